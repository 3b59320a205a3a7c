package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль.
	// Не различаем "нет такого email" и "неверный пароль"
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
