// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtree

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeKeepsOrder(t *testing.T) {
	v := mustDecode(t, `{"zeta": 1, "alpha": [true, null, "x"], "mid": {"b": 2, "a": 1}}`)
	if got, want := v.Keys(), []string{"zeta", "alpha", "mid"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	mid, _ := v.Key("mid")
	if got, want := mid.Keys(), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("mid.Keys() = %v, want %v", got, want)
	}
	alpha, _ := v.Key("alpha")
	if alpha.Len() != 3 || alpha.Index(0).Kind() != Bool || !alpha.Index(1).IsNull() || alpha.Index(2).Kind() != String {
		t.Errorf("alpha = %v", alpha)
	}

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"zeta":1,"alpha":[true,null,"x"],"mid":{"b":2,"a":1}}`; string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, in := range []string{``, `{`, `{"a": }`, `[1, 2`, `{} {}`} {
		if _, err := Decode(strings.NewReader(in)); err == nil {
			t.Errorf("Decode(%q) succeeded, want error", in)
		}
	}
}

func TestUnmarshalEmbedded(t *testing.T) {
	var doc struct {
		Meta struct {
			LastUpdated string `json:"lastUpdated"`
		} `json:"meta"`
		Frameworks Value `json:"frameworks"`
	}
	in := `{"meta": {"lastUpdated": "2023-10-01T00:00:00Z"}, "frameworks": {"noir": {}, "leo": {}}}`
	if err := json.Unmarshal([]byte(in), &doc); err != nil {
		t.Fatal(err)
	}
	if got, want := doc.Frameworks.Keys(), []string{"noir", "leo"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestValueAccessors(t *testing.T) {
	if n, ok := Num(3.9).Int(); !ok || n != 3 {
		t.Errorf("Int() = %d, %v", n, ok)
	}
	if _, ok := Str("3").Int(); ok {
		t.Errorf("string reported as int")
	}
	if _, ok := Str("x").Get("0"); ok {
		t.Errorf("Get on string succeeded")
	}
	if v, ok := Strs("a", "b").Get("1"); !ok || !v.Equal(Str("b")) {
		t.Errorf("Get(1) = %v, %v", v, ok)
	}
	if got := MapOf("a", Num(1), "b", Strs("x")).String(); got != `{"a":1,"b":["x"]}` {
		t.Errorf("String() = %s", got)
	}
	if !MapOf("a", Num(1), "b", Num(2)).Equal(MapOf("b", Num(2), "a", Num(1))) {
		t.Errorf("mapping equality depends on key order")
	}
}

func TestGetIndex(t *testing.T) {
	seq := Strs("x", "y")
	for _, test := range []struct {
		seg    string
		want   Value
		wantOK bool
	}{
		{"0", Str("x"), true},
		{"1", Str("y"), true},
		{"2", Value{}, false},
		{"01", Value{}, false},
		{"+1", Value{}, false},
		{"-0", Value{}, false},
		{"-1", Value{}, false},
		{" 1", Value{}, false},
		{"", Value{}, false},
	} {
		got, ok := seq.Get(test.seg)
		if ok != test.wantOK || !got.Equal(test.want) {
			t.Errorf("Get(%q) = %v, %v; want %v, %v", test.seg, got, ok, test.want, test.wantOK)
		}
	}
}

func TestIntRange(t *testing.T) {
	for _, test := range []struct {
		f      float64
		want   int64
		wantOK bool
	}{
		{0, 0, true},
		{-1 << 63, -1 << 63, true},
		{1<<63 - 1024, 1<<63 - 1024, true},
		{1 << 63, 0, false},
		{9223372036854775807, 0, false},
		{-1<<63 - 2048, 0, false},
		{math.Inf(1), 0, false},
		{math.NaN(), 0, false},
	} {
		got, ok := Num(test.f).Int()
		if got != test.want || ok != test.wantOK {
			t.Errorf("Num(%v).Int() = %d, %v; want %d, %v", test.f, got, ok, test.want, test.wantOK)
		}
	}
}
