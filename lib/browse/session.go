package browse

import (
	candidatehandler "candidate-browser/lib/candidate"
	"candidate-browser/lib/pagination"
	"candidate-browser/lib/query"
	"candidate-browser/models"
	candidateapimodels "candidate-browser/models/api/candidate"
	"context"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
)

// Vocabulary значения фильтров для боковой панели
type Vocabulary interface {
	Get() candidateapimodels.FiltersView
}

type Options struct {
	ID         string
	Candidates candidatehandler.Provider
	Vocabulary Vocabulary
	Debounce   time.Duration
	Initial    *query.State
	// Publish вызывается из цикла сессии после каждого изменения
	Publish func(snapshot Snapshot)
}

// Session состояние страницы одного подключения. Все изменения выполняются в цикле Run.
type Session struct {
	id         string
	candidates candidatehandler.Provider
	vocabulary Vocabulary
	publish    func(snapshot Snapshot)

	intents chan Intent
	results chan fetchResult
	commits chan uint64
	stop    chan struct{}
	done    chan struct{}

	stopOnce sync.Once
	started  atomic.Bool
	fetches  sync.WaitGroup

	debouncer *Debouncer
	dismiss   *DismissRegistry
	debounce  time.Duration

	// далее только для цикла сессии
	state              query.State
	draft              string
	draftSeq           uint64
	generation         uint64
	cancelFetch        context.CancelFunc
	loading            bool
	errMsg             string
	result             candidateapimodels.CandidatePageView
	sortMenuOpen       bool
	unregisterSortMenu func()
	openSections       map[models.FilterCategory]bool
	openInterviewMenus map[int]int
	cardRegions        []func()
}

type fetchResult struct {
	generation uint64
	view       candidateapimodels.CandidatePageView
	state      query.State
	err        error
}

func NewSession(opts Options) *Session {
	state := query.Default()
	if opts.Initial != nil {
		state = *opts.Initial
	}
	publish := opts.Publish
	if publish == nil {
		publish = func(Snapshot) {}
	}
	return &Session{
		id:                 opts.ID,
		candidates:         opts.Candidates,
		vocabulary:         opts.Vocabulary,
		publish:            publish,
		intents:            make(chan Intent, 64),
		results:            make(chan fetchResult, 1),
		commits:            make(chan uint64, 1),
		stop:               make(chan struct{}),
		done:               make(chan struct{}),
		debouncer:          NewDebouncer(opts.Debounce),
		dismiss:            NewDismissRegistry(),
		debounce:           opts.Debounce,
		state:              state,
		draft:              state.Search,
		openSections:       map[models.FilterCategory]bool{},
		openInterviewMenus: map[int]int{},
		result: candidateapimodels.CandidatePageView{
			Candidates: []candidateapimodels.Candidate{},
			Page:       state.Page,
			TotalPages: 1,
		},
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) getLogger() *log.Entry {
	return log.WithField("session_id", s.id)
}

// Dispatch передает действие в цикл сессии. false - сессия уже закрыта.
func (s *Session) Dispatch(intent Intent) bool {
	select {
	case <-s.stop:
		return false
	case <-s.done:
		return false
	default:
	}
	select {
	case s.intents <- intent:
		return true
	case <-s.stop:
		return false
	case <-s.done:
		return false
	}
}

// Close останавливает цикл и ждет освобождения ресурсов сессии
func (s *Session) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	if s.started.Load() {
		<-s.done
	}
}

// Run цикл сессии, выполняется до Close или завершения ctx
func (s *Session) Run(ctx context.Context) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	defer close(s.done)
	defer s.teardown()

	s.requery(ctx)
	s.emit()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case intent := <-s.intents:
			s.handle(ctx, intent)
		case seq := <-s.commits:
			s.commitSearch(ctx, seq)
		case res := <-s.results:
			s.applyResult(res)
		}
	}
}

func (s *Session) teardown() {
	s.debouncer.Stop()
	if s.cancelFetch != nil {
		s.cancelFetch()
		s.cancelFetch = nil
	}
	s.releaseCardRegions()
	if s.unregisterSortMenu != nil {
		s.unregisterSortMenu()
		s.unregisterSortMenu = nil
	}
	s.dismiss.Clear()
	s.fetches.Wait()
	s.getLogger().Debug("сессия закрыта")
}

func (s *Session) handle(ctx context.Context, intent Intent) {
	switch v := intent.(type) {
	case SearchInput:
		s.draft = v.Value
		s.draftSeq++
		seq := s.draftSeq
		if s.debounce <= 0 {
			s.commitSearch(ctx, seq)
			return
		}
		s.debouncer.Trigger(func() { s.signalCommit(seq) })
	case ToggleFullText:
		s.apply(ctx, s.state.WithFullText(v.Checked))
	case ToggleFilter:
		next, ok := s.state.WithFilter(v.Category, v.Value, v.Checked)
		if !ok {
			s.getLogger().WithField("category", v.Category).Warn("неизвестная категория фильтра")
			return
		}
		s.apply(ctx, next)
	case SelectSort:
		next, ok := s.state.WithSort(v.Value)
		if !ok {
			s.getLogger().WithField("sort", v.Value).Warn("неизвестное значение сортировки")
			return
		}
		s.closeSortMenu()
		if !s.apply(ctx, next) {
			s.emit()
		}
	case ToggleSortMenu:
		if s.sortMenuOpen {
			s.closeSortMenu()
		} else {
			s.openSortMenu()
		}
		s.emit()
	case ToggleSection:
		if v.Category != models.FilterApplicationType && v.Category != models.FilterSource {
			return
		}
		s.openSections[v.Category] = !s.openSections[v.Category]
		s.emit()
	case SelectPage:
		s.apply(ctx, s.state.WithPage(v.Page, s.result.TotalPages))
	case ToggleInterviewMenu:
		s.toggleInterviewMenu(v.CandidateID, v.Index)
		s.emit()
	case PointerDown:
		sortMenuOpen, openMenus := s.sortMenuOpen, len(s.openInterviewMenus)
		s.dismiss.Pointer(v.Regions)
		if sortMenuOpen != s.sortMenuOpen || openMenus != len(s.openInterviewMenus) {
			s.emit()
		}
	case ResetFilters:
		s.debouncer.Cancel()
		s.drainCommit()
		s.draft = ""
		s.draftSeq++
		s.closeSortMenu()
		if !s.apply(ctx, s.state.Reset()) {
			s.emit()
		}
	default:
		s.getLogger().Warnf("неизвестное действие %T", intent)
	}
}

// signalCommit вызывается таймером поиска, не блокирует.
// Неразобранный сигнал заменяется новым, отправитель один - таймер дебаунсера.
func (s *Session) signalCommit(seq uint64) {
	s.drainCommit()
	select {
	case s.commits <- seq:
	default:
	}
}

func (s *Session) drainCommit() {
	select {
	case <-s.commits:
	default:
	}
}

// commitSearch сигнал от устаревшего таймера игнорируется, для нового черновика пауза отсчитывается заново
func (s *Session) commitSearch(ctx context.Context, seq uint64) {
	if seq != s.draftSeq {
		return
	}
	s.apply(ctx, s.state.WithSearch(s.draft))
}

// apply новое состояние запроса, false - состояние не изменилось
func (s *Session) apply(ctx context.Context, next query.State) bool {
	if next.Equal(s.state) {
		return false
	}
	s.state = next
	s.requery(ctx)
	s.emit()
	return true
}

func (s *Session) requery(ctx context.Context) {
	if s.cancelFetch != nil {
		// предыдущий ответ больше не нужен
		s.cancelFetch()
	}
	s.generation++
	generation := s.generation
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancelFetch = cancel
	s.loading = true
	s.errMsg = ""
	state := s.state

	s.fetches.Add(1)
	go func() {
		defer s.fetches.Done()
		view, clamped, err := s.candidates.ListOfCandidate(fetchCtx, state)
		select {
		case s.results <- fetchResult{generation: generation, view: view, state: clamped, err: err}:
		case <-fetchCtx.Done():
		}
	}()
}

func (s *Session) applyResult(res fetchResult) {
	logger := s.getLogger().WithField("generation", res.generation)
	if res.generation != s.generation {
		logger.Debug("устаревший ответ отброшен")
		return
	}
	s.loading = false
	if s.cancelFetch != nil {
		s.cancelFetch()
		s.cancelFetch = nil
	}
	s.closeInterviewMenus()
	if res.err != nil {
		logger.WithError(res.err).Error("ошибка загрузки кандидатов")
		s.errMsg = candidatehandler.LoadErrorMessage
		s.result = candidateapimodels.CandidatePageView{
			Candidates: []candidateapimodels.Candidate{},
			Page:       s.state.Page,
			PerPage:    s.candidates.PerPage(),
			TotalPages: 1,
		}
		s.releaseCardRegions()
		s.emit()
		return
	}
	s.state = res.state
	s.result = res.view
	s.registerCardRegions()
	s.emit()
}

func (s *Session) openSortMenu() {
	s.sortMenuOpen = true
	if s.unregisterSortMenu != nil {
		s.unregisterSortMenu()
	}
	s.unregisterSortMenu = s.dismiss.Register(SortMenuRegion, s.closeSortMenu)
}

func (s *Session) closeSortMenu() {
	s.sortMenuOpen = false
	if s.unregisterSortMenu != nil {
		s.unregisterSortMenu()
		s.unregisterSortMenu = nil
	}
}

func (s *Session) toggleInterviewMenu(candidateID, index int) {
	var target *candidateapimodels.Candidate
	for idx := range s.result.Candidates {
		if s.result.Candidates[idx].ID == candidateID {
			target = &s.result.Candidates[idx]
			break
		}
	}
	if target == nil || index < 0 || index >= len(target.Interviews) {
		return
	}
	if current, ok := s.openInterviewMenus[candidateID]; ok && current == index {
		delete(s.openInterviewMenus, candidateID)
		return
	}
	s.openInterviewMenus[candidateID] = index
}

func (s *Session) closeInterviewMenus() {
	s.openInterviewMenus = map[int]int{}
}

// registerCardRegions области карточек регистрируются на время показа страницы
func (s *Session) registerCardRegions() {
	s.releaseCardRegions()
	for _, item := range s.result.Candidates {
		candidateID := item.ID
		unregister := s.dismiss.Register(InterviewMenuRegion(candidateID), func() {
			delete(s.openInterviewMenus, candidateID)
		})
		s.cardRegions = append(s.cardRegions, unregister)
	}
}

func (s *Session) releaseCardRegions() {
	for _, unregister := range s.cardRegions {
		unregister()
	}
	s.cardRegions = nil
}

func (s *Session) snapshot() Snapshot {
	filters := candidateapimodels.FiltersView{ApplicationTypes: []string{}, Sources: []string{}}
	if s.vocabulary != nil {
		filters = s.vocabulary.Get()
	}
	snapshot := Snapshot{
		SessionID:          s.id,
		Generation:         s.generation,
		State:              s.state,
		Draft:              s.draft,
		Loading:            s.loading,
		Error:              s.errMsg,
		Result:             s.result,
		Pagination:         pagination.Build(s.state.Page, s.result.TotalPages),
		Filters:            filters,
		SortMenuOpen:       s.sortMenuOpen,
		OpenSections:       s.openSections,
		OpenInterviewMenus: s.openInterviewMenus,
	}
	return snapshot.clone()
}

func (s *Session) emit() {
	s.publish(s.snapshot())
}
