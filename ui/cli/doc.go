// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Examlist using Cobra.
// It wires configuration, logging, i18n and the exam store, and keeps the
// commands thin: schedule logic lives in internal/schedule.
package cli
