package masterdata

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден в каталоге
	ErrCustomerNotFound = errors.New("masterdata client: customer not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("masterdata client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("masterdata client: invalid response")
)
