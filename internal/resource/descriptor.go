// Package resource описывает упорядоченные коллекции портфолио: имена полей
// в API и в хранилище, обязательные поля, базу порядка и сортировку.
// Один обобщенный контроллер обслуживает все коллекции по их дескрипторам.
package resource

// Kind - тип значения поля в теле запроса
type Kind int

const (
	KindString Kind = iota
	KindText
	KindBool
	KindInt
	KindStrings
	KindTime
)

// OrderColumn - колонка позиции элемента в коллекции
const OrderColumn = "order"

// Field - строка таблицы соответствия "имя в API" <-> "колонка"
type Field struct {
	API      string
	Column   string
	Kind     Kind
	ReadOnly bool
}

// Sort - вторичный ключ сортировки после order asc
type Sort struct {
	Column string
	Desc   bool
}

// Payload - тело запроса/ответа в camelCase
type Payload map[string]any

// Row - строка хранилища в snake_case
type Row map[string]any

// Descriptor - конфигурация одной коллекции
type Descriptor struct {
	Name      string // сегмент пути: skills, social-links, ...
	Label     string // для сообщений: Skill, Social link, ...
	Table     string
	Fields    []Field
	Required  []string // имена в API, в порядке сообщения об ошибке
	Ordered   bool
	OrderBase int
	Sorts     []Sort
	Defaults  map[string]any // колонка -> значение, если поле не передано

	byAPI    map[string]Field
	byColumn map[string]Field
}

// Build проверяет и индексирует дескриптор. Вызывается один раз при объявлении.
func (d *Descriptor) Build() *Descriptor {
	d.byAPI = make(map[string]Field, len(d.Fields))
	d.byColumn = make(map[string]Field, len(d.Fields))
	for _, f := range d.Fields {
		if _, dup := d.byAPI[f.API]; dup {
			panic("resource: duplicate api field " + f.API + " in " + d.Name)
		}
		if _, dup := d.byColumn[f.Column]; dup {
			panic("resource: duplicate column " + f.Column + " in " + d.Name)
		}
		d.byAPI[f.API] = f
		d.byColumn[f.Column] = f
	}
	for _, name := range d.Required {
		if _, ok := d.byAPI[name]; !ok {
			panic("resource: required field " + name + " is not mapped in " + d.Name)
		}
	}
	return d
}

// FieldByAPI ищет поле по имени в API
func (d *Descriptor) FieldByAPI(name string) (Field, bool) {
	f, ok := d.byAPI[name]
	return f, ok
}

// FieldByColumn ищет поле по колонке
func (d *Descriptor) FieldByColumn(column string) (Field, bool) {
	f, ok := d.byColumn[column]
	return f, ok
}

// APIName переводит колонку в имя API; неизвестная колонка возвращается как есть
func (d *Descriptor) APIName(column string) string {
	if f, ok := d.byColumn[column]; ok {
		return f.API
	}
	return column
}

// WritableColumns - колонки, которые перезаписываются при полном обновлении.
// Колонка order сюда не входит: она пишется только если передана явно.
func (d *Descriptor) WritableColumns() []string {
	cols := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		if f.ReadOnly || f.Column == OrderColumn {
			continue
		}
		cols = append(cols, f.Column)
	}
	return cols
}
