package resource

import (
	"errors"
	"math"
)

// MaxOrder - наибольшая допустимая позиция; помещается в INTEGER любой поддерживаемой БД
const MaxOrder = math.MaxInt32

// ErrOrderExhausted - в коллекции уже есть элемент на позиции MaxOrder
var ErrOrderExhausted = errors.New("no order position left after the current maximum")

// NextOrder - позиция для нового элемента: base для пустой коллекции,
// иначе max+1. Сама по себе операция не атомарна: два вызова с одним и тем же
// прочитанным max дадут одинаковые позиции. Атомарность обеспечивает
// репозиторий (InsertNext), читающий max и вставляющий строку в одной транзакции.
func NextOrder(base, max int, found bool) (int, error) {
	if !found {
		return base, nil
	}
	if max >= MaxOrder {
		return 0, ErrOrderExhausted
	}
	return max + 1, nil
}
