// Copyright 2022 Board of Trustees of the University of Illinois.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

const (
	//RoleUser can write reviews
	RoleUser string = "user"
	//RolePublisher can write organizations and courses
	RolePublisher string = "publisher"
	//RoleAdmin can act on any entity
	RoleAdmin string = "admin"
)

// Actor is the authenticated user performing a write operation
type Actor struct {
	ID   string
	Role string
}

// IsAdmin says if the actor is an administrator
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// HasRole says if the actor has one of the provided roles
func (a Actor) HasRole(roles ...string) bool {
	for _, role := range roles {
		if a.Role == role {
			return true
		}
	}
	return false
}

// Owns says if the actor may modify an entity owned by ownerID
func (a Actor) Owns(ownerID string) bool {
	return a.IsAdmin() || (len(a.ID) > 0 && a.ID == ownerID)
}
