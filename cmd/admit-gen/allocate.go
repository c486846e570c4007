// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/someonegg/admitmatch"
	"github.com/someonegg/admitmatch/school"
)

func doAllocate(ctx context.Context, logger *zap.Logger, matcher *school.Matcher,
	inputFile, outputFile string) error {

	logger = logger.With(zap.String("run", uuid.NewString()))

	batch, err := loadBatch(inputFile)
	if err != nil {
		return fmt.Errorf("load input file failed: %w", err)
	}

	admissions, summ, err := matcher.Match(batch, logger)
	if err != nil {
		return fmt.Errorf("allocate failed: %w", err)
	}
	logger.Info("allocated",
		zap.Int("admitted", summ.Admitted),
		zap.Int("unplaced", len(summ.Unplaced)),
		zap.Int("seats_remaining", summ.SeatsRemaining))

	err = writeAdmissions(outputFile, admissions)
	if err != nil {
		return fmt.Errorf("write output file failed: %w", err)
	}
	logger.Info("admissions written", zap.String("file", outputFile))

	return nil
}

func loadBatch(file string) (*school.Batch, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var batch school.Batch

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&batch); err != nil {
			return nil, err
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&batch); err != nil {
			return nil, err
		}
	}

	return &batch, nil
}

func writeAdmissions(file string, admissions admitmatch.Admissions) error {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "   ")
	if err := encoder.Encode(admissions); err != nil {
		return err
	}

	return os.WriteFile(file, buf.Bytes(), 0644)
}
