// Zaparoo Core
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Core.
//
// Zaparoo Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Core.  If not, see <http://www.gnu.org/licenses/>.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockOracle is a testify mock for emulators.Oracle.
type MockOracle struct {
	mock.Mock
}

func (m *MockOracle) HasItem(ctx context.Context, list, item string) bool {
	return m.Called(ctx, list, item).Bool(0)
}

// NewMockOracle returns an oracle that reports the given list:item pairs
// as installed and everything else as missing.
func NewMockOracle(installed ...[2]string) *MockOracle {
	m := &MockOracle{}
	for _, pair := range installed {
		m.On("HasItem", mock.Anything, pair[0], pair[1]).Return(true)
	}
	m.On("HasItem", mock.Anything, mock.Anything, mock.Anything).Return(false)
	return m
}
