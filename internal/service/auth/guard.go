package auth

import "github.com/vladislavdragonenkov/salesops/internal/domain"

// Guard выполняет проверку владения ресурсом. Чистая функция без побочных
// эффектов: применяется единообразно перед любым чтением, обновлением или
// удалением клиента либо заказа, ограниченным владельцем.
type Guard struct{}

// NewGuard возвращает guard проверки владения.
func NewGuard() Guard {
	return Guard{}
}

// Authorize разрешает операцию, только если ресурс принадлежит действующему
// пользователю. Пустой идентификатор действующего пользователя означает
// отсутствие аутентификации.
func (Guard) Authorize(actingUserID, resourceOwnerID string) error {
	if actingUserID == "" {
		return domain.ErrUnauthenticated
	}
	if actingUserID != resourceOwnerID {
		return domain.ErrPermissionDenied
	}
	return nil
}
