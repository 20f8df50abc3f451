// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"io/ioutil"

	kflate "github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"
)

func init() {
	registerCodec("flate",
		func(src []byte) []byte {
			var buf bytes.Buffer
			w, err := kflate.NewWriter(&buf, kflate.DefaultCompression)
			if err != nil {
				panic(err)
			}
			if _, err := w.Write(src); err != nil {
				panic(err)
			}
			if err := w.Close(); err != nil {
				panic(err)
			}
			return buf.Bytes()
		},
		func(src []byte) []byte {
			r := kflate.NewReader(bytes.NewReader(src))
			defer r.Close()
			out, err := ioutil.ReadAll(r)
			if err != nil {
				panic(err)
			}
			return out
		})

	registerCodec("xz",
		func(src []byte) []byte {
			var buf bytes.Buffer
			w, err := xz.NewWriter(&buf)
			if err != nil {
				panic(err)
			}
			if _, err := w.Write(src); err != nil {
				panic(err)
			}
			if err := w.Close(); err != nil {
				panic(err)
			}
			return buf.Bytes()
		},
		func(src []byte) []byte {
			r, err := xz.NewReader(bytes.NewReader(src))
			if err != nil {
				panic(err)
			}
			out, err := ioutil.ReadAll(r)
			if err != nil {
				panic(err)
			}
			return out
		})
}
