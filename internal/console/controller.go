package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"p2pconsole/internal/backend"
	"p2pconsole/internal/config"
	"p2pconsole/internal/logger"
	"p2pconsole/internal/session"
)

type State string

const (
	StateChecking        State = "CHECKING"
	StateUnauthenticated State = "UNAUTHENTICATED"
	StateAuthenticated   State = "AUTHENTICATED"
)

// Controller -- навигационный контроллер консоли: держит состояние сессии и
// текущую страницу, запускает и гасит опрос страниц. Токен сессии пишет
// только он; страницы и fetcher видят хранилище лишь на чтение.
// Бизнес-данные контроллер сам не запрашивает -- это дело страниц.
type Controller struct {
	cfg     *config.Config
	client  backend.Client
	session *session.Store
	log     *logger.Logger
	out     io.Writer
	prompt  Prompter

	mu         sync.Mutex
	state      State
	page       Page
	gen        uint64
	views      map[Page]view
	cancelPoll context.CancelFunc

	// outMu сериализует вывод: в один поток пишут цикл событий и
	// горутина команд, строки не должны перемешиваться.
	outMu sync.Mutex

	events chan fetchResult
	done   chan struct{}
	closed sync.Once
}

type fetchResult struct {
	page Page
	gen  uint64
	view view
	err  error
}

func New(cfg *config.Config, client backend.Client, store *session.Store, prompt Prompter, out io.Writer, log *logger.Logger) *Controller {
	return &Controller{
		cfg:     cfg,
		client:  client,
		session: store,
		log:     log,
		out:     out,
		prompt:  prompt,
		state:   StateChecking,
		views:   map[Page]view{},
		events:  make(chan fetchResult, 16),
		done:    make(chan struct{}),
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) CurrentPage() Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Run принимает результаты опроса страниц до отмены контекста.
func (c *Controller) Run(ctx context.Context) error {
	defer c.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-c.events:
			c.applyResult(res)
		}
	}
}

func (c *Controller) Close() {
	c.closed.Do(func() {
		c.mu.Lock()
		if c.cancelPoll != nil {
			c.cancelPoll()
			c.cancelPoll = nil
		}
		c.mu.Unlock()
		close(c.done)
	})
}

// StartupCheck -- переходы из CHECKING. Без сохранённого токена сеть не
// трогаем вовсе. Отказ бэкенда и транспортный сбой неразличимы для исхода:
// токен стирается, консоль закрывается до повторного входа.
func (c *Controller) StartupCheck(ctx context.Context) {
	c.setState(StateChecking)

	if _, ok := c.session.Credential(); !ok {
		c.setState(StateUnauthenticated)
		c.println("Вход не выполнен. Команда: login")
		return
	}

	if _, err := c.client.Status(ctx); err != nil {
		c.log.WithError(err).Warn("Проверка сессии не прошла, токен стёрт.")
		if clearErr := c.session.ClearCredential(); clearErr != nil {
			c.log.WithError(clearErr).Error("Не удалось стереть токен сессии.")
		}
		c.setState(StateUnauthenticated)
		c.println("Сессия недействительна. Команда: login")
		return
	}

	c.log.Info("Сессия подтверждена бэкендом.")
	c.enterAuthenticated(LandingPage)
}

// Login выполняется только вне аутентифицированного состояния.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	if c.State() == StateAuthenticated {
		return fmt.Errorf("Вход уже выполнен.")
	}

	token, err := c.client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("Бэкенд не вернул токен.")
	}

	if err := c.session.SetCredential(token); err != nil {
		return err
	}

	c.log.Info("Вход выполнен.")
	c.enterAuthenticated(LandingPage)
	return nil
}

// Logout: запрос к бэкенду -- best effort, локальный выход происходит всегда.
func (c *Controller) Logout(ctx context.Context) {
	if c.State() != StateAuthenticated {
		return
	}

	if _, err := c.client.Logout(ctx); err != nil {
		c.log.WithError(err).Warn("Запрос logout не прошёл, выходим локально.")
	}
	if err := c.session.ClearCredential(); err != nil {
		c.log.WithError(err).Error("Не удалось стереть токен сессии.")
	}

	c.stopPolling()
	c.setState(StateUnauthenticated)
	c.println("Выход выполнен.")
}

// SelectPage переключает страницу; незнакомое имя уводит на стартовую.
func (c *Controller) SelectPage(ctx context.Context, name string) error {
	if c.State() != StateAuthenticated {
		return fmt.Errorf("Сначала выполните вход.")
	}
	c.showPage(ParsePage(name))
	return nil
}

func (c *Controller) setState(state State) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

func (c *Controller) enterAuthenticated(page Page) {
	c.setState(StateAuthenticated)
	c.showPage(page)
}

// showPage гасит опрос прежней страницы и поднимает новый. Смена поколения
// отсекает результаты, прилетевшие от уже невидимой страницы.
func (c *Controller) showPage(page Page) {
	c.mu.Lock()
	if c.cancelPoll != nil {
		c.cancelPoll()
	}
	c.gen++
	gen := c.gen
	c.page = page
	ctx, cancel := context.WithCancel(context.Background())
	c.cancelPoll = cancel
	c.mu.Unlock()

	c.printf("\n== %s ==\n", page)
	go c.pollLoop(ctx, page, gen)
}

func (c *Controller) stopPolling() {
	c.mu.Lock()
	if c.cancelPoll != nil {
		c.cancelPoll()
		c.cancelPoll = nil
	}
	c.gen++
	c.mu.Unlock()
}

// applyResult -- единственное место, где результаты запросов попадают в
// состояние. Устаревшее поколение отбрасывается молча; внутри живой страницы
// порядок ответов не гарантируется, побеждает последний пришедший.
func (c *Controller) applyResult(res fetchResult) {
	c.mu.Lock()
	if c.state != StateAuthenticated || res.gen != c.gen {
		c.mu.Unlock()
		c.log.WithPage(string(res.page)).Debug("Результат устаревшего опроса отброшен.")
		return
	}

	current := c.page

	if res.err != nil {
		c.mu.Unlock()
		// Фоновое перечитывание чужой страницы: называем её в сообщении,
		// иначе ошибка выглядит принадлежащей текущему экрану.
		if res.page == current {
			c.printf("! %s\n", errorMessage(res.err))
		} else {
			c.printf("! %s: %s\n", res.page, errorMessage(res.err))
		}
		return
	}

	c.views[res.page] = res.view
	c.mu.Unlock()

	if res.page == current {
		c.renderView(res.view)
	}
}

func (c *Controller) printf(format string, args ...any) {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	fmt.Fprintf(c.out, format, args...)
}

func (c *Controller) println(args ...any) {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	fmt.Fprintln(c.out, args...)
}

// renderView держит замок на всю отрисовку: tabwriter пишет кусками.
func (c *Controller) renderView(v view) {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	v.render(c.out)
}

// viewFor отдаёт последнее отрисованное состояние страницы (для проверок).
func (c *Controller) viewFor(page Page) view {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.views[page]
}

// errorMessage сводит таксономию ошибок к одной строке для оператора:
// локально пойманное отсутствие токена, ответ сервера, транспортный сбой.
func errorMessage(err error) string {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, backend.ErrNoCredential):
		return "Нет токена сессии, запрос не отправлен. Команда: login"
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, backend.ErrNetwork):
		return "Нет связи с бэкендом."
	default:
		return err.Error()
	}
}
