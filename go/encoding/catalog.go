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

// Ids of the built-in encodings.
const (
	Binary ID = iota
	ASCII
	UTF8
	UTF16BE
	UTF16LE
	UTF32BE
	UTF32LE
	ISO8859_1
	MacRoman
	MacCyrillic
	Big5
	EUCJP

	// Count is the number of built-in encodings.
	Count
)

// Catalog returns the definitions of the built-in encodings, in id order.
func Catalog() []Definition {
	return []Definition{
		{Binary, KindSpecial, "ASCII-8BIT", 1, true, true, []string{"BINARY"}},
		{ASCII, KindConversionBackend, "US-ASCII", 1, true, true, []string{"ASCII", "ANSI_X3.4-1968", "646"}},
		{UTF8, KindConversionBackend, "UTF-8", 1, false, true, []string{"CP65001", "locale"}},
		{UTF16BE, KindConversionBackend, "UTF-16BE", 2, false, false, nil},
		{UTF16LE, KindConversionBackend, "UTF-16LE", 2, false, false, nil},
		{UTF32BE, KindConversionBackend, "UTF-32BE", 4, false, false, []string{"UCS-4BE"}},
		{UTF32LE, KindConversionBackend, "UTF-32LE", 4, false, false, []string{"UCS-4LE"}},
		{ISO8859_1, KindConversionBackend, "ISO-8859-1", 1, true, true, []string{"ISO8859-1"}},
		{MacRoman, KindConversionBackend, "macRoman", 1, true, true, nil},
		{MacCyrillic, KindConversionBackend, "macCyrillic", 1, true, true, nil},
		{Big5, KindConversionBackend, "Big5", 1, false, true, []string{"CP950"}},
		{EUCJP, KindConversionBackend, "EUC-JP", 1, false, true, []string{"eucJP"}},
	}
}

// RegisterCatalog registers every built-in encoding in reg.
func RegisterCatalog(reg *Registry) {
	for _, def := range Catalog() {
		reg.Register(def)
	}
}
