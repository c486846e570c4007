// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/someonegg/admitmatch"
	"github.com/someonegg/admitmatch/school"
)

const jsonBatch = `{
  "schools": [
    {"name": "A", "location": [0, 0], "maxAllocation": 1},
    {"name": "B", "location": [10, 10], "maxAllocation": 1},
    {"name": "C", "location": [50, 50], "maxAllocation": 4}
  ],
  "students": [
    {"id": 1, "homeLocation": [0, 0]},
    {"id": 2, "homeLocation": [10, 10], "alumni": "A"}
  ]
}`

const yamlBatch = `schools:
  - name: A
    location: [0, 0]
    maxAllocation: 1
  - name: B
    location: [10, 10]
    maxAllocation: 1
  - name: C
    location: [50, 50]
    maxAllocation: 4
students:
  - id: 1
    homeLocation: [0, 0]
  - id: 2
    homeLocation: [10, 10]
    alumni: A
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(data), 0644))
	return file
}

func readAdmissions(t *testing.T, file string) map[string][]int {
	t.Helper()
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	var out map[string][]int
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestDoAllocate(t *testing.T) {
	for _, input := range []struct{ name, data string }{
		{"batch.json", jsonBatch},
		{"batch.yaml", yamlBatch},
		{"batch.yml", yamlBatch},
	} {
		t.Run(input.name, func(t *testing.T) {
			inputFile := writeFile(t, input.name, input.data)
			outputFile := filepath.Join(t.TempDir(), "output.json")

			err := doAllocate(context.Background(), zap.NewNop(), &school.Matcher{}, inputFile, outputFile)
			require.NoError(t, err)

			// schools without admissions are written with an empty list
			assert.Equal(t, map[string][]int{"A": {1}, "B": {2}, "C": {}}, readAdmissions(t, outputFile))
		})
	}
}

func TestDoAllocate_Failure(t *testing.T) {
	t.Run("Degenerate", func(t *testing.T) {
		inputFile := writeFile(t, "batch.json", `{
  "schools": [{"name": "A", "location": [1, 1], "maxAllocation": 1}],
  "students": [{"id": 1, "homeLocation": [1, 1]}]
}`)
		outputFile := filepath.Join(t.TempDir(), "output.json")

		err := doAllocate(context.Background(), zap.NewNop(), &school.Matcher{}, inputFile, outputFile)
		assert.ErrorIs(t, err, admitmatch.ErrUndefinedNormalization)
		assert.NoFileExists(t, outputFile)
	})

	t.Run("Malformed", func(t *testing.T) {
		inputFile := writeFile(t, "batch.json", `{
  "schools": [{"name": "A", "location": [1, 1], "maxAllocation": 1}],
  "students": [{"id": 1, "homeLocation": [2, 2], "volunteer": "Z"}]
}`)
		outputFile := filepath.Join(t.TempDir(), "output.json")

		err := doAllocate(context.Background(), zap.NewNop(), &school.Matcher{}, inputFile, outputFile)
		assert.ErrorIs(t, err, admitmatch.ErrMalformedInput)
		assert.NoFileExists(t, outputFile)
	})

	t.Run("MissingInput", func(t *testing.T) {
		outputFile := filepath.Join(t.TempDir(), "output.json")
		err := doAllocate(context.Background(), zap.NewNop(), &school.Matcher{},
			filepath.Join(t.TempDir(), "absent.json"), outputFile)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("UnknownYAMLField", func(t *testing.T) {
		inputFile := writeFile(t, "batch.yaml", "schools: []\nteachers: []\n")
		_, err := loadBatch(inputFile)
		assert.Error(t, err)
	})

	t.Run("UnknownJSONField", func(t *testing.T) {
		inputFile := writeFile(t, "batch.json", `{
  "schools": [{"name": "A", "location": [1, 1], "maxAlocation": 1}],
  "students": []
}`)
		_, err := loadBatch(inputFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "maxAlocation")
		assert.NotErrorIs(t, err, admitmatch.ErrMalformedInput)
	})
}
