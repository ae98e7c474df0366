package office

import "errors"

var (
	ErrOfficeNotFound = errors.New("office not found")
	ErrOfficeIDExists = errors.New("office ID already exists")
)
