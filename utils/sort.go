package utils

import "go.mongodb.org/mongo-driver/bson"

const (
	SortAsc  = "asc"
	SortDesc = "desc"

	defaultSortField = "_id"
)

// BuildSort validates a user-supplied (sortField, sortOrder) pair against an
// allow-list. Unknown fields fall back to _id, anything that is not exactly
// "asc" or "desc" falls back to "desc". Membership is exact and
// case-sensitive; the result is always usable.
func BuildSort(allowedFields []string, sortField, sortOrder string) (string, string) {
	field := defaultSortField
	for _, allowed := range allowedFields {
		if sortField == allowed {
			field = sortField
			break
		}
	}

	order := SortDesc
	if sortOrder == SortAsc || sortOrder == SortDesc {
		order = sortOrder
	}

	return field, order
}

// SortDoc translates a validated sort pair into a Mongo sort document.
func SortDoc(field, order string) bson.D {
	direction := -1
	if order == SortAsc {
		direction = 1
	}
	return bson.D{{Key: field, Value: direction}}
}
