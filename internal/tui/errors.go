// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/shopman/internal/adapter"
	"github.com/MKhiriev/shopman/internal/service"
	"github.com/MKhiriev/shopman/internal/store"
)

// ErrUserQuit is returned when the user leaves the program.
var ErrUserQuit = errors.New("user quit")

var humanErrors = []struct {
	err     error
	message string
}{
	{service.ErrEmptyListName, "Введите название списка"},
	{service.ErrListNameTooLong, "Название списка слишком длинное"},
	{service.ErrEmptyItemName, "Введите название товара"},
	{service.ErrInvalidItemType, "Неизвестная категория"},
	{service.ErrNoListSelected, "Список не открыт"},
	{service.ErrPasswordRequired, "Нужен пароль списка"},
	{service.ErrWrongPassword, "Неверный пароль"},
	{service.ErrNothingToArchive, "Нет купленных товаров"},
	{service.ErrInvalidUndoData, "Отменить действие нельзя"},
	{service.ErrRetriesExhausted, "Изменение не удалось отправить на сервер"},
	{service.ErrOffline, "Нет связи с сервером, действие доступно только онлайн"},
	{adapter.ErrConflict, "Список с таким названием уже существует"},
	{store.ErrNotFound, "Список не найден"},
	{store.ErrStorageUnavailable, "Локальное хранилище недоступно"},
}

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, h := range humanErrors {
		if errors.Is(err, h.err) {
			return h.message
		}
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if errors.Is(err, adapter.ErrNetwork) {
		return "Отсутствует сеть или Сервер недоступен"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
