package session

import "errors"

var (
	// ErrEmptySelection возвращается при попытке добавить выбор без слотов и без флага "весь день"
	ErrEmptySelection = errors.New("session: selection has no slots and is not full-day")

	// ErrNothingStaged возвращается при финализации пустого аккумулятора
	ErrNothingStaged = errors.New("session: nothing staged")

	// ErrMixedHalls возвращается при попытке собрать в одну композицию выборы по разным залам
	ErrMixedHalls = errors.New("session: staged selections span multiple halls")

	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session: session not found")

	// ErrSnapshotNotReady возвращается, когда подтверждённого снимка занятости ещё нет
	// Пока снимок не получен, новые выборы блокируются: "неизвестно" не значит "свободно"
	ErrSnapshotNotReady = errors.New("session: occupancy snapshot not ready")
)
