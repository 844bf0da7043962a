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

package query

// Operator is a comparison the storage adapters know how to express.
// Only the operators declared here can reach the storage.
type Operator string

const (
	//OpEq equal
	OpEq Operator = "eq"
	//OpNe not equal
	OpNe Operator = "ne"
	//OpGt greater than
	OpGt Operator = "gt"
	//OpGte greater than or equal
	OpGte Operator = "gte"
	//OpLt less than
	OpLt Operator = "lt"
	//OpLte less than or equal
	OpLte Operator = "lte"
	//OpIn set membership
	OpIn Operator = "in"
)

// Operators lists every operator accepted in a query key suffix
var Operators = []Operator{OpEq, OpNe, OpGt, OpGte, OpLt, OpLte, OpIn}

var (
	equalityOperators   = []Operator{OpEq, OpNe, OpIn}
	comparisonOperators = []Operator{OpEq, OpNe, OpGt, OpGte, OpLt, OpLte, OpIn}
	rangeOperators      = []Operator{OpGt, OpGte, OpLt, OpLte}
)

// ValueType is the declared type of a field. Query values are coerced to it.
type ValueType int

const (
	//TypeString ...
	TypeString ValueType = iota
	//TypeID entity reference
	TypeID
	//TypeNumber ...
	TypeNumber
	//TypeInteger ...
	TypeInteger
	//TypeBoolean ...
	TypeBoolean
	//TypeDate RFC3339 or YYYY-MM-DD
	TypeDate
	//TypeObject can only be selected
	TypeObject
)

func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeID:
		return "id"
	case TypeNumber:
		return "number"
	case TypeInteger:
		return "integer"
	case TypeBoolean:
		return "boolean"
	case TypeDate:
		return "date"
	case TypeObject:
		return "object"
	}
	return "unknown"
}

// Field describes how a query key may be used
type Field struct {
	Path      string //storage path
	Type      ValueType
	Operators []Operator //empty - the field cannot be filtered
	Sortable  bool
}

// Allows says if the field may be filtered with the operator
func (f Field) Allows(op Operator) bool {
	for _, allowed := range f.Operators {
		if allowed == op {
			return true
		}
	}
	return false
}

// Schema is the allow list of query keys for an entity collection
type Schema struct {
	Entity string
	Fields map[string]Field
}

// Field gives the field for a query key
func (s Schema) Field(name string) (Field, bool) {
	field, ok := s.Fields[name]
	return field, ok
}

// StringField is a filterable and sortable text field
func StringField(path string) Field {
	return Field{Path: path, Type: TypeString, Operators: equalityOperators, Sortable: true}
}

// IDField is a filterable reference field
func IDField(path string) Field {
	return Field{Path: path, Type: TypeID, Operators: equalityOperators}
}

// NumberField is a filterable and sortable numeric field
func NumberField(path string) Field {
	return Field{Path: path, Type: TypeNumber, Operators: comparisonOperators, Sortable: true}
}

// IntegerField is a filterable and sortable integer field
func IntegerField(path string) Field {
	return Field{Path: path, Type: TypeInteger, Operators: comparisonOperators, Sortable: true}
}

// BooleanField is a filterable boolean field
func BooleanField(path string) Field {
	return Field{Path: path, Type: TypeBoolean, Operators: []Operator{OpEq, OpNe}}
}

// DateField is a range filterable and sortable date field
func DateField(path string) Field {
	return Field{Path: path, Type: TypeDate, Operators: append([]Operator{OpEq}, rangeOperators...), Sortable: true}
}

// ObjectField can only be selected
func ObjectField(path string) Field {
	return Field{Path: path, Type: TypeObject}
}
