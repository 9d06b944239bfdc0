/*
 * Copyright 2025 The homelab authors.
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

package discovery

import (
	"context"
	"errors"

	"github.com/homelab-edu/homelab/pkg/models"
)

// ErrDiscoveryUnavailable is returned when the host service manager
// cannot be queried at all. Callers surface it as a failed operation;
// the core never retries.
var ErrDiscoveryUnavailable = errors.New("service discovery unavailable")

// SystemManager enumerates the units known to the host service manager.
// Implementations are strictly read-only.
type SystemManager interface {
	ListUnits(ctx context.Context) ([]models.ServiceUnit, error)
}
