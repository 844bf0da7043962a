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

package utils

import (
	"net/http"
	"strings"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
)

var redactedHeaders = map[string]bool{"Authorization": true, "Cookie": true, "Set-Cookie": true, "X-Api-Key": true}

// LogRequest logs the request and hides the credential header fields
func LogRequest(logger *logs.Logger, req *http.Request) {
	if logger == nil || req == nil {
		return
	}

	logger.Infof("%s %s %s", req.Method, req.URL.Path, RedactHeaders(req.Header))
}

// RedactHeaders copies the headers replacing the credential values
func RedactHeaders(headers http.Header) map[string][]string {
	header := make(map[string][]string, len(headers))
	for key, value := range headers {
		if redactedHeaders[http.CanonicalHeaderKey(key)] {
			header[key] = []string{"---"}
		} else {
			header[key] = value
		}
	}
	return header
}

// SplitList splits a comma separated parameter, blank items are dropped
func SplitList(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if len(item) > 0 {
			items = append(items, item)
		}
	}
	return items
}
