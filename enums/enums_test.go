// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fruits int32

var fruitNames = []string{"Apple", "Pear"}

func TestString(t *testing.T) {
	assert.Equal(t, "Pear", String("fruits", fruitNames, fruits(1)))
	assert.Equal(t, "fruits(2)", String("fruits", fruitNames, fruits(2)))
	assert.Equal(t, "fruits(-1)", String("fruits", fruitNames, fruits(-1)))
}

func TestSetString(t *testing.T) {
	var f fruits
	require.NoError(t, SetString("fruits", fruitNames, &f, "Pear"))
	assert.Equal(t, fruits(1), f)
	err := SetString("fruits", fruitNames, &f, "Plum")
	assert.ErrorContains(t, err, `fruits: unknown value "Plum"`)
	assert.Equal(t, fruits(1), f)
}
