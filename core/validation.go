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

package core

import (
	"directory-building-block/core/model"
	"fmt"

	"gopkg.in/go-playground/validator.v9"
)

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("career", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, career := range model.Careers {
			if career == value {
				return true
			}
		}
		return false
	})
	validate.RegisterValidation("rating", func(fl validator.FieldLevel) bool {
		rating := fl.Field().Int()
		return rating >= int64(model.MinRating) && rating <= int64(model.MaxRating)
	})
	return validate
}

// validateEntity checks the entity against its validation tags and reports the first failing field
func (app *application) validateEntity(entity interface{}) error {
	err := app.validate.Struct(entity)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return model.NewError(model.ErrorCodeInvalidData, "", err.Error(), err)
	}
	fieldErr := validationErrors[0]
	reason := fieldErr.Tag()
	if len(fieldErr.Param()) > 0 {
		reason = fmt.Sprintf("%s=%s", reason, fieldErr.Param())
	}
	return model.NewError(model.ErrorCodeInvalidData, fieldErr.Namespace(), "failed on "+reason, err)
}
