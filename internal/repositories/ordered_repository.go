package repositories

import (
	"errors"
	"fmt"

	"portfolio_backend/internal/resource"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderedRepository - шлюз хранилища для упорядоченной коллекции.
// Как и остальные репозитории, не хранит *gorm.DB: пул или транзакция
// передаются в каждый вызов.
type OrderedRepository[T any] interface {
	List(db *gorm.DB, sorts []resource.Sort) ([]T, error)
	FindByID(db *gorm.DB, id string) (*T, error)
	MaxOrder(db *gorm.DB) (max int, found bool, err error)
	Insert(db *gorm.DB, item *T) error
	// InsertNext атомарно читает максимальный order и вставляет элемент,
	// собранный build, на позицию NextOrder(base, max).
	InsertNext(db *gorm.DB, base int, build func(order int) (*T, error)) (*T, error)
	Update(db *gorm.DB, id string, item *T, columns []string) (*T, error)
	Delete(db *gorm.DB, id string) error
}

type OrderedRepositoryImpl[T any] struct{}

func NewOrderedRepository[T any]() OrderedRepository[T] {
	return &OrderedRepositoryImpl[T]{}
}

// List - order asc, затем вторичные ключи, затем id asc для стабильного порядка
func (r *OrderedRepositoryImpl[T]) List(db *gorm.DB, sorts []resource.Sort) ([]T, error) {
	items := make([]T, 0)
	if err := db.Model(new(T)).Order(listOrder(sorts)).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *OrderedRepositoryImpl[T]) FindByID(db *gorm.DB, id string) (*T, error) {
	var item T
	if err := db.Where("id = ?", id).Take(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *OrderedRepositoryImpl[T]) MaxOrder(db *gorm.DB) (int, bool, error) {
	var orders []int
	err := db.Model(new(T)).
		Order(clause.OrderByColumn{Column: clause.Column{Name: resource.OrderColumn}, Desc: true}).
		Limit(1).
		Pluck(resource.OrderColumn, &orders).Error
	if err != nil {
		return 0, false, err
	}
	if len(orders) == 0 {
		return 0, false, nil
	}
	return orders[0], true, nil
}

func (r *OrderedRepositoryImpl[T]) Insert(db *gorm.DB, item *T) error {
	return db.Create(item).Error
}

func (r *OrderedRepositoryImpl[T]) InsertNext(db *gorm.DB, base int, build func(order int) (*T, error)) (*T, error) {
	var created *T

	err := db.Transaction(func(tx *gorm.DB) error {
		reader, err := lockForAppend[T](tx)
		if err != nil {
			return fmt.Errorf("lock collection: %w", err)
		}

		max, found, err := r.MaxOrder(reader)
		if err != nil {
			return fmt.Errorf("read max order: %w", err)
		}

		order, err := resource.NextOrder(base, max, found)
		if err != nil {
			return err
		}
		item, err := build(order)
		if err != nil {
			return err
		}
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update перезаписывает только перечисленные колонки (нулевые значения тоже)
func (r *OrderedRepositoryImpl[T]) Update(db *gorm.DB, id string, item *T, columns []string) (*T, error) {
	result := db.Model(new(T)).Where("id = ?", id).Select(columns).Updates(item)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// MySQL считает только реально измененные строки, поэтому проверяем наличие отдельно
		var count int64
		if err := db.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrRecordNotFound
		}
	}
	return r.FindByID(db, id)
}

func (r *OrderedRepositoryImpl[T]) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func listOrder(sorts []resource.Sort) clause.OrderBy {
	columns := make([]clause.OrderByColumn, 0, len(sorts)+2)
	columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: resource.OrderColumn}})
	for _, s := range sorts {
		columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: s.Column}, Desc: s.Desc})
	}
	columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	return clause.OrderBy{Columns: columns}
}

// lockForAppend сериализует конкурентные добавления в одну коллекцию до конца транзакции.
// PostgreSQL: advisory lock по имени таблицы. MySQL: SELECT ... FOR UPDATE на чтении max.
// SQLite блокирует запись на уровне базы сам.
func lockForAppend[T any](tx *gorm.DB) (*gorm.DB, error) {
	switch tx.Dialector.Name() {
	case "postgres":
		table, err := tableName[T](tx)
		if err != nil {
			return nil, err
		}
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", table).Error; err != nil {
			return nil, err
		}
		return tx, nil
	case "mysql":
		return tx.Clauses(clause.Locking{Strength: "UPDATE"}), nil
	default:
		return tx, nil
	}
}

func tableName[T any](db *gorm.DB) (string, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(T)); err != nil {
		return "", err
	}
	return stmt.Schema.Table, nil
}
