/*
 * Copyright 2026 wirefmt Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespaceHash_DeterministicAndDistinct(t *testing.T) {
	h1 := NamespaceHash("com.example.Account")
	h2 := NamespaceHash("com.example.Account")
	h3 := NamespaceHash("com.example.Order")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.NotEqual(t, uint64(0), h1)
}

func TestNoNamespace_IsZero(t *testing.T) {
	assert.Equal(t, uint64(0), NoNamespace)
}
