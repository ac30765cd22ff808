/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package encoding

import "github.com/prometheus/client_golang/prometheus"

var (
	lookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "strenc",
		Subsystem: "encoding",
		Name:      "lookups_total",
		Help:      "Number of encoding name lookups, by result (hit or miss).",
	}, []string{"result"})

	defaultChangesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "strenc",
		Subsystem: "encoding",
		Name:      "default_changes_total",
		Help:      "Number of changes to the default encodings, by slot (external or internal).",
	}, []string{"slot"})

	fatalTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "strenc",
		Subsystem: "encoding",
		Name:      "fatal_total",
		Help:      "Number of integrity violations reported.",
	})
)

// Collectors returns the metrics of the package, for registration with a
// prometheus.Registerer.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{lookupsTotal, defaultChangesTotal, fatalTotal}
}
