package sistrum

/*
MIT License

Copyright (c) 2019-2022 The sistrum authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

/*PartNumber is an Extron part number. The SIS protocol generically has an
"N" command that returns one, so part numbers are how device models are
identified at connection time.*/
type PartNumber string

const (
	//PartNumberMPS112 is the Extron MPS 112
	PartNumberMPS112 PartNumber = "60-532-01"
	//PartNumberMPS112CS is the Extron MPS 112CS
	PartNumberMPS112CS PartNumber = "60-532-02"
	//PartNumberDVS304 is the Extron DVS 304
	PartNumberDVS304 PartNumber = "60-736-01"
	//PartNumberDVS304A is the Extron DVS 304 A
	PartNumberDVS304A PartNumber = "60-736-02"
	//PartNumberDVS304D is the Extron DVS 304 D
	PartNumberDVS304D PartNumber = "60-736-03"
	//PartNumberDVS304AD is the Extron DVS 304 AD
	PartNumberDVS304AD PartNumber = "60-736-04"
	//PartNumberDVS304DVI is the Extron DVS 304 DVI
	PartNumberDVS304DVI PartNumber = "60-1027-01"
	//PartNumberDVS304DVIA is the Extron DVS 304 DVI A
	PartNumberDVS304DVIA PartNumber = "60-1027-02"
	//PartNumberDVS304DVID is the Extron DVS 304 DVI D
	PartNumberDVS304DVID PartNumber = "60-1027-03"
	//PartNumberDVS304DVIAD is the Extron DVS 304 DVI AD
	PartNumberDVS304DVIAD PartNumber = "60-1027-04"
)
