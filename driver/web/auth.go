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

package web

import (
	"directory-building-block/core/model"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
)

const (
	typeCheckAuthRequestToken logutils.MessageActionType = "checking auth"
)

// tokenClaims are the claims of the bearer tokens issued to directory users
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth handler
type Auth struct {
	secret []byte

	logger *logs.Logger
}

// check extracts the actor from the bearer token. A missing token is accepted on public routes.
func (auth *Auth) check(req *http.Request, required bool) (*model.Actor, int, error) {
	header := req.Header.Get("Authorization")
	if len(header) == 0 {
		if required {
			return nil, http.StatusUnauthorized, errors.ErrorData(logutils.StatusMissing, logutils.TypeToken, nil)
		}
		return nil, http.StatusOK, nil
	}

	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || len(tokenString) == 0 {
		return nil, http.StatusUnauthorized, errors.ErrorData(logutils.StatusInvalid, logutils.TypeToken, nil)
	}

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return auth.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, http.StatusUnauthorized, errors.WrapErrorAction(typeCheckAuthRequestToken, logutils.TypeToken, nil, err)
	}
	if len(claims.Subject) == 0 {
		return nil, http.StatusUnauthorized, errors.ErrorData(logutils.StatusMissing, logutils.TypeClaim, logutils.StringArgs("sub"))
	}

	switch claims.Role {
	case model.RoleUser, model.RolePublisher, model.RoleAdmin:
	default:
		return nil, http.StatusUnauthorized, errors.ErrorData(logutils.StatusInvalid, logutils.TypeClaim, &logutils.FieldArgs{"role": claims.Role})
	}

	return &model.Actor{ID: claims.Subject, Role: claims.Role}, http.StatusOK, nil
}

// IssueToken signs a token for the actor, used by tooling and tests
func (auth *Auth) IssueToken(actor model.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{Role: actor.Role, RegisteredClaims: jwt.RegisteredClaims{
		Subject:   actor.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(auth.secret)
	if err != nil {
		return "", errors.WrapErrorAction(logutils.ActionCreate, logutils.TypeToken, nil, err)
	}
	return token, nil
}

// NewAuth creates new auth handler
func NewAuth(secret string, logger *logs.Logger) *Auth {
	return &Auth{secret: []byte(secret), logger: logger}
}
