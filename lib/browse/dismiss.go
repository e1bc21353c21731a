package browse

import (
	"slices"
	"sync"
)

// DismissRegistry закрытие открытых элементов (меню сортировки, меню интервью) при нажатии вне их области.
// Событие нажатия несет идентификаторы всех областей, внутри которых находится цель.
type DismissRegistry struct {
	mu      sync.Mutex
	nextID  uint64
	regions map[string]dismissEntry
}

type dismissEntry struct {
	id        uint64
	onDismiss func()
}

func NewDismissRegistry() *DismissRegistry {
	return &DismissRegistry{regions: map[string]dismissEntry{}}
}

// Register повторная регистрация области заменяет предыдущую.
// Возвращаемая функция снимает только свою регистрацию.
func (r *DismissRegistry) Register(region string, onDismiss func()) (unregister func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := r.nextID
	r.regions[region] = dismissEntry{id: id, onDismiss: onDismiss}
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if entry, ok := r.regions[region]; ok && entry.id == id {
			delete(r.regions, region)
		}
	}
}

// Pointer вызывает onDismiss для всех зарегистрированных областей, не содержащих цель нажатия.
// Возвращает закрытые области в порядке сортировки.
func (r *DismissRegistry) Pointer(inside []string) []string {
	r.mu.Lock()
	dismissed := []string{}
	callbacks := []func(){}
	keys := make([]string, 0, len(r.regions))
	for region := range r.regions {
		keys = append(keys, region)
	}
	slices.Sort(keys)
	for _, region := range keys {
		if slices.Contains(inside, region) {
			continue
		}
		dismissed = append(dismissed, region)
		callbacks = append(callbacks, r.regions[region].onDismiss)
	}
	r.mu.Unlock()
	// обработчики могут снимать регистрацию, поэтому вызываем вне блокировки
	for _, fn := range callbacks {
		if fn != nil {
			fn()
		}
	}
	return dismissed
}

func (r *DismissRegistry) Registered(region string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.regions[region]
	return ok
}

func (r *DismissRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.regions)
}

// Clear снимает все регистрации при закрытии сессии
func (r *DismissRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.regions = map[string]dismissEntry{}
}
