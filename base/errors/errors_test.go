// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	assert.NoError(t, Log(nil))
	assert.Equal(t, 0, buf.Len())

	err := fmt.Errorf("bad bins")
	assert.Equal(t, err, Log(err))
	assert.True(t, strings.Contains(buf.String(), "bad bins"))
	assert.True(t, strings.Contains(buf.String(), "errors_test.go"))

	buf.Reset()
	assert.Equal(t, 3, Log1(3, err))
	assert.True(t, strings.Contains(buf.String(), "bad bins"))
}
