// Package shell mantiene el estado de vista en memoria (auth, vista activa,
// colecciones cargadas, filtros, diálogos) y despacha las operaciones CRUD a
// los casos de uso. Es el único orquestador: los diálogos son componentes hoja
// que devuelven registros completos vía callback de submit.
package shell

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/eletror-app/internal/application/auth"
	"github.com/jhoicas/eletror-app/internal/application/contacts"
	"github.com/jhoicas/eletror-app/internal/application/dto"
	"github.com/jhoicas/eletror-app/internal/application/inventory"
	"github.com/jhoicas/eletror-app/internal/domain/entity"
	"github.com/jhoicas/eletror-app/pkg/logger"
)

// View selector de la vista activa.
type View string

// Vistas disponibles.
const (
	ViewDashboard View = "dashboard"
	ViewClients   View = "clients"
	ViewSuppliers View = "suppliers"
	ViewUsers     View = "users"
)

// Event notificación emitida por el shell en el canal de suscripción.
type Event string

// Eventos emitidos.
const (
	EventPendingUsers Event = "pending_users"
)

// Config comportamiento del shell.
type Config struct {
	// PollInterval intervalo de sondeo de usuarios pendientes (sesión admin);
	// no positivo usa el intervalo por defecto.
	PollInterval time.Duration
	// Confirm pide confirmación antes de acciones destructivas; nil = siempre sí.
	Confirm func(msg string) bool
}

// defaultPollInterval intervalo de sondeo cuando la configuración no trae uno válido.
const defaultPollInterval = 5 * time.Second

// Shell estado de la aplicación y orquestación contra los casos de uso.
type Shell struct {
	authUC    *auth.UseCase
	itemUC    *inventory.UseCase
	contactUC *contacts.UseCase
	log       *logger.Logger
	cfg       Config
	events    chan Event

	mu             sync.Mutex
	user           *dto.UserResponse
	view           View
	items          []entity.InventoryItem
	contacts       []entity.Contact
	pending        []string
	search         string
	category       string
	loading        bool
	itemDialog     bool
	contactDialog  bool
	editingItem    *entity.InventoryItem
	editingContact *entity.Contact
}

// New construye el shell en estado no autenticado, vista dashboard, filtro "Todos".
func New(authUC *auth.UseCase, itemUC *inventory.UseCase, contactUC *contacts.UseCase, log *logger.Logger, cfg Config) *Shell {
	if cfg.Confirm == nil {
		cfg.Confirm = func(string) bool { return true }
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	return &Shell{
		authUC:    authUC,
		itemUC:    itemUC,
		contactUC: contactUC,
		log:       log,
		cfg:       cfg,
		events:    make(chan Event, 8),
		view:      ViewDashboard,
		category:  CategoryAll,
		loading:   true,
	}
}

// Events canal de suscripción a notificaciones del shell.
func (s *Shell) Events() <-chan Event {
	return s.events
}

// Init comprueba la sesión persistida; si existe, carga artículos y contactos.
func (s *Shell) Init() error {
	user, err := s.authUC.CurrentUser()
	if err != nil {
		return err
	}
	if user == nil {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		return nil
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.log.Info().Str("username", user.Username).Msg("sesión restaurada")
	return s.loadData()
}

// Login autentica y carga los datos de la aplicación.
func (s *Shell) Login(username, password string) error {
	user, err := s.authUC.Login(dto.LoginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login")
	return s.loadData()
}

// Register da de alta un usuario pendiente de aprobación; no autentica.
func (s *Shell) Register(username, password string) error {
	return s.authUC.Register(dto.RegisterRequest{Username: username, Password: password})
}

// Logout limpia la sesión y descarga el estado; vuelve a la vista dashboard.
func (s *Shell) Logout() error {
	if err := s.authUC.Logout(); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = nil
	s.items = nil
	s.contacts = nil
	s.pending = nil
	s.view = ViewDashboard
	s.mu.Unlock()
	s.log.Info().Msg("logout")
	return nil
}

// loadData carga artículos y contactos concurrentemente y une ambas cargas
// antes de publicar el estado. No hay garantía de orden entre las dos lecturas.
func (s *Shell) loadData() error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	var (
		wg          sync.WaitGroup
		items       []entity.InventoryItem
		contactList []entity.Contact
		itemsErr    error
		contactsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		items, itemsErr = s.itemUC.Items()
	}()
	go func() {
		defer wg.Done()
		contactList, contactsErr = s.contactUC.Contacts()
	}()
	wg.Wait()

	if itemsErr != nil || contactsErr != nil {
		// La carga terminó aunque haya fallado: la UI no debe quedar "cargando".
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		if itemsErr != nil {
			return fmt.Errorf("cargar artículos: %w", itemsErr)
		}
		return fmt.Errorf("cargar contactos: %w", contactsErr)
	}

	s.mu.Lock()
	s.items = items
	s.contacts = contactList
	s.loading = false
	s.mu.Unlock()
	s.log.Debug().Int("items", len(items)).Int("contacts", len(contactList)).Msg("datos cargados")
	return nil
}

// StartPendingPolling sondea los usuarios pendientes mientras la sesión sea de
// admin: un tick inmediato y luego cada PollInterval. Se detiene al cancelar el
// contexto, al cerrar sesión o si el rol deja de ser admin. Cada tick reemplaza
// la lista completa (idempotente); los ticks solapados solo suman lecturas.
func (s *Shell) StartPendingPolling(ctx context.Context) {
	go func() {
		if !s.refreshPending() {
			return
		}
		ticker := time.NewTicker(s.cfg.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !s.refreshPending() {
					return
				}
			}
		}
	}()
}

// refreshPending relee la lista de pendientes; false detiene el sondeo.
func (s *Shell) refreshPending() bool {
	s.mu.Lock()
	user := s.user
	s.mu.Unlock()
	if user == nil || user.Role != entity.RoleAdmin {
		return false
	}
	pending, err := s.authUC.PendingUsers()
	if err != nil {
		s.log.Warn().Err(err).Msg("sondeo de pendientes")
		return true
	}
	s.mu.Lock()
	s.pending = pending
	s.mu.Unlock()
	s.emit(EventPendingUsers)
	return true
}

// emit publica sin bloquear; si nadie consume, el evento se descarta.
func (s *Shell) emit(e Event) {
	select {
	case s.events <- e:
	default:
	}
}

// SaveItem persiste el artículo y, confirmada la escritura, fusiona el registro
// devuelto en el estado local (reemplaza si el ID existe, si no lo agrega).
func (s *Shell) SaveItem(item entity.InventoryItem) error {
	saved, err := s.itemUC.Save(item)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == saved.ID {
			s.items[i] = *saved
			return nil
		}
	}
	s.items = append(s.items, *saved)
	return nil
}

// DeleteItem pide confirmación, elimina localmente de forma optimista y lanza
// el borrado persistente; si este falla, restaura el estado previo.
func (s *Shell) DeleteItem(id string) error {
	if !s.cfg.Confirm("Tem a certeza que deseja apagar este artigo?") {
		return nil
	}
	s.mu.Lock()
	prev := s.items
	kept := make([]entity.InventoryItem, 0, len(prev))
	for _, it := range prev {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()

	if err := s.itemUC.Delete(id); err != nil {
		s.mu.Lock()
		s.items = prev
		s.mu.Unlock()
		return err
	}
	return nil
}

// SaveContact persiste el contacto y fusiona el registro confirmado en local.
func (s *Shell) SaveContact(contact entity.Contact) error {
	saved, err := s.contactUC.Save(contact)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contacts {
		if s.contacts[i].ID == saved.ID {
			s.contacts[i] = *saved
			return nil
		}
	}
	s.contacts = append(s.contacts, *saved)
	return nil
}

// DeleteContact pide confirmación, elimina localmente y lanza el borrado;
// si falla, restaura el estado previo.
func (s *Shell) DeleteContact(id string) error {
	if !s.cfg.Confirm("Tem a certeza que deseja apagar este contacto?") {
		return nil
	}
	s.mu.Lock()
	prev := s.contacts
	kept := make([]entity.Contact, 0, len(prev))
	for _, c := range prev {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.contacts = kept
	s.mu.Unlock()

	if err := s.contactUC.Delete(id); err != nil {
		s.mu.Lock()
		s.contacts = prev
		s.mu.Unlock()
		return err
	}
	return nil
}

// ApproveUser aprueba el alta y quita el username de la lista local de pendientes.
func (s *Shell) ApproveUser(username string) error {
	if err := s.authUC.Approve(username); err != nil {
		return err
	}
	s.removePendingLocal(username)
	return nil
}

// RejectUser pide confirmación y elimina el registro pendiente.
func (s *Shell) RejectUser(username string) error {
	if !s.cfg.Confirm(fmt.Sprintf("Rejeitar utilizador %s?", username)) {
		return nil
	}
	if err := s.authUC.Reject(username); err != nil {
		return err
	}
	s.removePendingLocal(username)
	return nil
}

func (s *Shell) removePendingLocal(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]string, 0, len(s.pending))
	for _, u := range s.pending {
		if u != username {
			kept = append(kept, u)
		}
	}
	s.pending = kept
}

// ─── Filtros y accesores de estado ───────────────────────────────────────────

// SetSearch actualiza el texto de búsqueda (los filtros se recalculan por lectura).
func (s *Shell) SetSearch(q string) {
	s.mu.Lock()
	s.search = q
	s.mu.Unlock()
}

// SetCategory actualiza la categoría seleccionada ("Todos" no excluye nada).
func (s *Shell) SetCategory(c string) {
	s.mu.Lock()
	s.category = c
	s.mu.Unlock()
}

// SetView cambia la vista activa.
func (s *Shell) SetView(v View) {
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()
}

// CurrentView devuelve la vista activa.
func (s *Shell) CurrentView() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// CurrentUser devuelve el usuario autenticado o nil.
func (s *Shell) CurrentUser() *dto.UserResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Loading indica si la carga inicial sigue en curso.
func (s *Shell) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Items devuelve una copia del inventario cargado.
func (s *Shell) Items() []entity.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.InventoryItem(nil), s.items...)
}

// Contacts devuelve una copia de los contactos cargados.
func (s *Shell) Contacts() []entity.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Contact(nil), s.contacts...)
}

// PendingUsers devuelve una copia de los usernames pendientes.
func (s *Shell) PendingUsers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.pending...)
}

// FilteredItems aplica búsqueda y categoría sobre el inventario cargado.
func (s *Shell) FilteredItems() []entity.InventoryItem {
	s.mu.Lock()
	items, search, category := s.items, s.search, s.category
	s.mu.Unlock()
	return FilterItems(items, search, category)
}

// ContactsByType aplica la búsqueda sobre los contactos del tipo dado.
func (s *Shell) ContactsByType(contactType string) []entity.Contact {
	s.mu.Lock()
	list, search := s.contacts, s.search
	s.mu.Unlock()
	return FilterContacts(list, contactType, search)
}

// ─── Estado de diálogos ──────────────────────────────────────────────────────

// OpenItemDialog abre el editor de artículo; target nil significa alta nueva.
func (s *Shell) OpenItemDialog(target *entity.InventoryItem) {
	s.mu.Lock()
	s.itemDialog = true
	s.editingItem = target
	s.mu.Unlock()
}

// CloseItemDialog cierra el editor de artículo y limpia el objetivo de edición.
func (s *Shell) CloseItemDialog() {
	s.mu.Lock()
	s.itemDialog = false
	s.editingItem = nil
	s.mu.Unlock()
}

// ItemDialog devuelve visibilidad y objetivo de edición del editor de artículo.
func (s *Shell) ItemDialog() (open bool, target *entity.InventoryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemDialog, s.editingItem
}

// OpenContactDialog abre el editor de contacto; target nil significa alta nueva.
func (s *Shell) OpenContactDialog(target *entity.Contact) {
	s.mu.Lock()
	s.contactDialog = true
	s.editingContact = target
	s.mu.Unlock()
}

// CloseContactDialog cierra el editor de contacto.
func (s *Shell) CloseContactDialog() {
	s.mu.Lock()
	s.contactDialog = false
	s.editingContact = nil
	s.mu.Unlock()
}

// ContactDialog devuelve visibilidad y objetivo de edición del editor de contacto.
func (s *Shell) ContactDialog() (open bool, target *entity.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contactDialog, s.editingContact
}
