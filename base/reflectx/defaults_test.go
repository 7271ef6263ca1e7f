// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upper string

func (u *upper) UnmarshalText(b []byte) error {
	*u = upper(strings.ToUpper(string(b)))
	return nil
}

type inner struct {
	Spacing float32 `default:"0.5"`
	On      bool    `default:"true"`
}

type outer struct {
	Name   string `default:"room"`
	Count  int    `default:"3"`
	Code   upper  `default:"abc"`
	Inner  inner
	NoTag  string
	hidden int `default:"9"`
}

func TestSetFromDefaultTags(t *testing.T) {
	o := outer{NoTag: "keep"}
	require.NoError(t, SetFromDefaultTags(&o))
	assert.Equal(t, "room", o.Name)
	assert.Equal(t, 3, o.Count)
	assert.Equal(t, upper("ABC"), o.Code)
	assert.Equal(t, float32(0.5), o.Inner.Spacing)
	assert.True(t, o.Inner.On)
	assert.Equal(t, "keep", o.NoTag)
	assert.Equal(t, 0, o.hidden)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	assert.Error(t, SetFromDefaultTags(outer{}))
	bad := struct {
		N int `default:"x"`
	}{}
	assert.ErrorContains(t, SetFromDefaultTags(&bad), "field N")
	assert.NoError(t, SetFromDefaultTags(nil))
}
