package models

// ConstraintError reports a schema rule violated before the row reaches the
// store (numeric range checks). Uniqueness and foreign keys stay with the
// store itself and surface as GORM's translated errors.
type ConstraintError struct {
	Rule string
}

func (e *ConstraintError) Error() string { return e.Rule }
