package experiences

import "errors"

var (
	// ErrExperienceNotFound возвращается, когда впечатление не найдено
	ErrExperienceNotFound = errors.New("experiences: experience not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("experiences: internal error")
)
