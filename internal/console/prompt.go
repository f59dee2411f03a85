package console

// Prompter -- ввод оператора для форм: обычная строка, секрет без эха,
// явное подтверждение. Терминальная реализация живёт в cmd/console,
// тесты подставляют свою.
type Prompter interface {
	Line(label string) (string, error)
	Secret(label string) (string, error)
	Confirm(label string) (bool, error)
}
