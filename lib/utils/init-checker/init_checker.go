package initchecker

import (
	"fmt"
	"reflect"
)

// CheckInit пары "имя", значение. Паника при неинициализированной зависимости,
// в том числе при интерфейсе с nil указателем внутри.
func CheckInit(pairs ...any) {
	if err := Check(pairs...); err != nil {
		panic(err.Error())
	}
}

func Check(pairs ...any) error {
	if len(pairs)%2 != 0 {
		return fmt.Errorf("CheckInit: odd number of arguments")
	}
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			return fmt.Errorf("CheckInit: argument %d must be string", i)
		}
		if isNil(pairs[i+1]) {
			return fmt.Errorf("%s dependency not initialized", name)
		}
	}
	return nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
