// Package middleware HTTP middleware: идентификация сотрудника и метрики
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/avlko/GMA-BookingService/internal/api/handlers"
)

// StaffHeader заголовок с логином сотрудника агентства.
// Аутентификацию выполняет внешний шлюз, сервис доверяет заголовку.
const StaffHeader = "X-Staff-Login"

type staffKey struct{}

const msgStaffRequired = "не указан сотрудник (заголовок X-Staff-Login)"

// Staff извлекает логин сотрудника из заголовка и кладет его в контекст.
// Запросы без заголовка отклоняются: все мутации каталога и бронирований
// должны быть атрибутированы конкретному сотруднику.
func Staff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		login := strings.TrimSpace(r.Header.Get(StaffHeader))
		if login == "" {
			handlers.RespondUnauthorized(w, msgStaffRequired)
			return
		}

		ctx := context.WithValue(r.Context(), staffKey{}, login)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffLogin возвращает логин сотрудника из контекста.
// Пустая строка означает, что запрос прошел мимо middleware Staff.
func StaffLogin(ctx context.Context) string {
	login, _ := ctx.Value(staffKey{}).(string)
	return login
}
