package resource

// ToAPI переводит строку хранилища в тело ответа. Колонки вне таблицы
// соответствия отбрасываются, значения не меняются.
func (d *Descriptor) ToAPI(row Row) Payload {
	out := make(Payload, len(row))
	for column, value := range row {
		if f, ok := d.byColumn[column]; ok {
			out[f.API] = value
		}
	}
	return out
}

// ToStore - обратное преобразование тела запроса в строку хранилища.
// ToStore(ToAPI(row)) совпадает с row на каждом описанном поле.
func (d *Descriptor) ToStore(payload Payload) Row {
	out := make(Row, len(payload))
	for name, value := range payload {
		if f, ok := d.byAPI[name]; ok {
			out[f.Column] = value
		}
	}
	return out
}

// Writable убирает из строки поля только для чтения (id, даты)
func (d *Descriptor) Writable(row Row) Row {
	out := make(Row, len(row))
	for column, value := range row {
		f, ok := d.byColumn[column]
		if !ok || f.ReadOnly {
			continue
		}
		out[column] = value
	}
	return out
}
