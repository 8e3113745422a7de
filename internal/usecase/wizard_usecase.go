package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"comunidad_dashboard/internal/domain/entities"
	"comunidad_dashboard/internal/domain/validation"
	"comunidad_dashboard/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSesionNoEncontrada = errors.New("wizard session not found")
	ErrSesionIDVacio      = errors.New("invalid session id")
	ErrEtapaNoEncontrada  = errors.New("etapa not found in draft")
	ErrEnvioFueraDePaso   = errors.New("submit only allowed on the summary step")
	ErrEnvioEnCurso       = errors.New("submit already in progress")
)

// DatosBasicos carries the first-step form fields. Values are stored on the
// draft as-is; validation runs when the user tries to advance.
type DatosBasicos struct {
	Titulo      string
	Descripcion string
	Tipo        string
	Pais        string
	Provincia   string
	Ciudad      string
	Barrio      string
}

// ResultadoEnvio is the outcome of a successful submit: the authoritative
// persisted project plus the session already reset for a new entry.
type ResultadoEnvio struct {
	Proyecto entities.Proyecto
	Sesion   entities.SesionBorrador
}

// IWizardUseCase is the project-creation wizard: an ordered three-step flow
// (datos básicos → etapas → resumen) over a draft owned by one session.
//
// Navigation rules:
//   - Siguiente advances iff the subset of rules scoped to the current step
//     passes; otherwise the session stays put and the field errors are
//     returned.
//   - Anterior always goes back (floored at the first step), no validation.
//   - Enviar is reachable only from the summary step; it issues exactly one
//     create request. Success resets the draft, failure preserves it.
//
// Etapa and pedido editing follows the dialogs' save semantics: entries
// without an ID are stamped with a fresh one and appended, entries with a
// known ID replace the original in place, and deletes by unknown ID are
// no-ops. Collections are replaced wholesale, never mutated in place.

type IWizardUseCase interface {
	Iniciar(ctx context.Context) (entities.SesionBorrador, error)
	Obtener(ctx context.Context, sesionID string) (entities.SesionBorrador, error)
	ActualizarDatosBasicos(ctx context.Context, sesionID string, datos DatosBasicos) (entities.SesionBorrador, error)
	Siguiente(ctx context.Context, sesionID string) (entities.SesionBorrador, []validation.FieldError, error)
	Anterior(ctx context.Context, sesionID string) (entities.SesionBorrador, error)
	GuardarEtapa(ctx context.Context, sesionID string, etapa entities.EtapaProyecto) (entities.SesionBorrador, []validation.FieldError, error)
	EliminarEtapa(ctx context.Context, sesionID, etapaID string) (entities.SesionBorrador, error)
	GuardarPedido(ctx context.Context, sesionID, etapaID string, pedido entities.PedidoCobertura) (entities.SesionBorrador, []validation.FieldError, error)
	EliminarPedido(ctx context.Context, sesionID, etapaID, pedidoID string) (entities.SesionBorrador, error)
	Enviar(ctx context.Context, sesionID string) (ResultadoEnvio, []validation.FieldError, error)
}

type WizardUseCase struct {
	store   interfaces.ISesionStore
	gateway interfaces.IProjectGateway
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(store interfaces.ISesionStore, gateway interfaces.IProjectGateway) *WizardUseCase {
	return &WizardUseCase{store: store, gateway: gateway}
}

func (u *WizardUseCase) Iniciar(ctx context.Context) (entities.SesionBorrador, error) {
	now := time.Now().UTC()
	s := entities.SesionBorrador{
		ID:   uuid.NewString(),
		Paso: entities.PasoDatosBasicos,
		Borrador: entities.ProyectoBorrador{
			Etapas: []entities.EtapaProyecto{},
		},
		CreadaEn:      now,
		ActualizadaEn: now,
	}
	if err := u.store.Save(ctx, s); err != nil {
		return entities.SesionBorrador{}, err
	}
	log.Printf("[wizard][usecase] session started sesion_id=%s", s.ID)
	return s, nil
}

func (u *WizardUseCase) Obtener(ctx context.Context, sesionID string) (entities.SesionBorrador, error) {
	return u.sesion(ctx, sesionID)
}

func (u *WizardUseCase) ActualizarDatosBasicos(ctx context.Context, sesionID string, datos DatosBasicos) (entities.SesionBorrador, error) {
	s, err := u.sesion(ctx, sesionID)
	if err != nil {
		return entities.SesionBorrador{}, err
	}

	b := s.Borrador
	b.Titulo = datos.Titulo
	b.Descripcion = datos.Descripcion
	b.Tipo = datos.Tipo
	b.Pais = datos.Pais
	b.Provincia = datos.Provincia
	b.Ciudad = datos.Ciudad
	b.Barrio = datos.Barrio
	s.Borrador = b

	return u.guardar(ctx, s)
}

func (u *WizardUseCase) Siguiente(ctx context.Context, sesionID string) (entities.SesionBorrador, []validation.FieldError, error) {
	s, err := u.sesion(ctx, sesionID)
	if err != nil {
		return entities.SesionBorrador{}, nil, err
	}

	var errs []validation.FieldError
	switch s.Paso {
	case entities.PasoDatosBasicos:
		errs = validation.DatosBasicos(s.Borrador)
	case entities.PasoEtapas:
		errs = validation.Etapas(s.Borrador.Etapas)
	default:
		// No forward transition from the summary step.
		return s, nil, nil
	}

	if len(errs) > 0 {
		log.Printf("[wizard][usecase] step gate rejected sesion_id=%s paso=%d errores=%d", s.ID, s.Paso, len(errs))
		return s, errs, nil
	}

	s.Paso++
	s, err = u.guardar(ctx, s)
	return s, nil, err
}

func (u *WizardUseCase) Anterior(ctx context.Context, sesionID string) (entities.SesionBorrador, error) {
	s, err := u.sesion(ctx, sesionID)
	if err != nil {
		return entities.SesionBorrador{}, err
	}

	if s.Paso > entities.PasoDatosBasicos {
		s.Paso--
	}
	return u.guardar(ctx, s)
}

func (u *WizardUseCase) GuardarEtapa(ctx context.Context, sesionID string, etapa entities.EtapaProyecto) (entities.SesionBorrador, []validation.FieldError, error) {
	s, err := u.sesion(ctx, sesionID)
	if err != nil {
		return entities.SesionBorrador{}, nil, err
	}

	// The etapa dialog enforces its rules (date ordering included) at save
	// time, before anything touches the draft.
	if errs := validation.Etapa(etapa); len(errs) > 0 {
		return s, errs, nil
	}

	etapa, err = estamparEtapa(etapa)
	if err != nil {
		return entities.SesionBorrador{}, nil, err
	}

	s.Borrador.Etapas = reemplazarOAgregarEtapa(s.Borrador.Etapas, etapa)
	s, err = u.guardar(ctx, s)
	return s, nil, err
}

func (u *WizardUseCase) EliminarEtapa(ctx context.Context, sesionID, etapaID string) (entities.SesionBorrador, error) {
	s, err := u.sesion(ctx, sesionID)
	if err != nil {
		return entities.SesionBorrador{}, err
	}

	filtradas := make([]entities.EtapaProyecto, 0, len(s.Borrador.Etapas))
	for _, e := range s.Borrador.Etapas {
		if e.ID != etapaID {
			filtradas = append(filtradas, e)
		}
	}
	s.Borrador.Etapas = filtradas
	return u.guardar(ctx, s)
}

func (u *WizardUseCase) GuardarPedido(ctx context.Context, sesionID, etapaID string, pedido entities.PedidoCobertura) (entities.SesionBorrador, []validation.FieldError, error) {
	s, err := u.sesion(ctx, sesionID)
	if err != nil {
		return entities.SesionBorrador{}, nil, err
	}

	idx := indiceEtapa(s.Borrador.Etapas, etapaID)
	if idx < 0 {
		return entities.SesionBorrador{}, nil, ErrEtapaNoEncontrada
	}

	if errs := validation.Pedido(pedido); len(errs) > 0 {
		return s, errs, nil
	}

	if pedido.ID == "" {
		pedido.ID, err = entities.NuevoPedidoID()
		if err != nil {
			return entities.SesionBorrador{}, nil, err
		}
	}

	etapa := s.Borrador.Etapas[idx]
	etapa.Pedidos = reemplazarOAgregarPedido(etapa.Pedidos, pedido)

	etapas := make([]entities.EtapaProyecto, len(s.Borrador.Etapas))
	copy(etapas, s.Borrador.Etapas)
	etapas[idx] = etapa
	s.Borrador.Etapas = etapas

	s, err = u.guardar(ctx, s)
	return s, nil, err
}

func (u *WizardUseCase) EliminarPedido(ctx context.Context, sesionID, etapaID, pedidoID string) (entities.SesionBorrador, error) {
	s, err := u.sesion(ctx, sesionID)
	if err != nil {
		return entities.SesionBorrador{}, err
	}

	idx := indiceEtapa(s.Borrador.Etapas, etapaID)
	if idx < 0 {
		return entities.SesionBorrador{}, ErrEtapaNoEncontrada
	}

	etapa := s.Borrador.Etapas[idx]
	filtrados := make([]entities.PedidoCobertura, 0, len(etapa.Pedidos))
	for _, p := range etapa.Pedidos {
		if p.ID != pedidoID {
			filtrados = append(filtrados, p)
		}
	}
	etapa.Pedidos = filtrados

	etapas := make([]entities.EtapaProyecto, len(s.Borrador.Etapas))
	copy(etapas, s.Borrador.Etapas)
	etapas[idx] = etapa
	s.Borrador.Etapas = etapas

	return u.guardar(ctx, s)
}

func (u *WizardUseCase) Enviar(ctx context.Context, sesionID string) (ResultadoEnvio, []validation.FieldError, error) {
	s, err := u.sesion(ctx, sesionID)
	if err != nil {
		return ResultadoEnvio{}, nil, err
	}

	if s.Paso != entities.PasoResumen {
		return ResultadoEnvio{}, nil, ErrEnvioFueraDePaso
	}
	if s.Enviando {
		return ResultadoEnvio{}, nil, ErrEnvioEnCurso
	}

	if errs := validation.Proyecto(s.Borrador); len(errs) > 0 {
		return ResultadoEnvio{Sesion: s}, errs, nil
	}

	s.Enviando = true
	if s, err = u.guardar(ctx, s); err != nil {
		return ResultadoEnvio{}, nil, err
	}

	log.Printf("[wizard][usecase] submit start sesion_id=%s etapas=%d", s.ID, len(s.Borrador.Etapas))
	creado, err := u.gateway.CreateProject(ctx, s.Borrador)
	if err != nil {
		// The draft survives a failed submit; the user may retry.
		log.Printf("[wizard][usecase] submit failed sesion_id=%s err=%v", s.ID, err)
		s.Enviando = false
		s, saveErr := u.guardar(ctx, s)
		if saveErr != nil {
			return ResultadoEnvio{}, nil, saveErr
		}
		return ResultadoEnvio{Sesion: s}, nil, err
	}

	// Reset for a new entry, keeping a pointer to what was just created.
	s.Paso = entities.PasoDatosBasicos
	s.Borrador = entities.ProyectoBorrador{Etapas: []entities.EtapaProyecto{}}
	s.Enviando = false
	s.ProyectoCreadoID = creado.ID
	if s, err = u.guardar(ctx, s); err != nil {
		return ResultadoEnvio{}, nil, err
	}

	log.Printf("[wizard][usecase] submit success sesion_id=%s proyecto_id=%s", s.ID, creado.ID)
	return ResultadoEnvio{Proyecto: creado, Sesion: s}, nil, nil
}

func (u *WizardUseCase) sesion(ctx context.Context, sesionID string) (entities.SesionBorrador, error) {
	sesionID = strings.TrimSpace(sesionID)
	if sesionID == "" {
		return entities.SesionBorrador{}, ErrSesionIDVacio
	}
	s, err := u.store.Get(ctx, sesionID)
	if err != nil {
		return entities.SesionBorrador{}, err
	}
	if s.ID == "" {
		return entities.SesionBorrador{}, ErrSesionNoEncontrada
	}
	return s, nil
}

func (u *WizardUseCase) guardar(ctx context.Context, s entities.SesionBorrador) (entities.SesionBorrador, error) {
	s.ActualizadaEn = time.Now().UTC()
	if err := u.store.Save(ctx, s); err != nil {
		return entities.SesionBorrador{}, err
	}
	return s, nil
}

// estamparEtapa assigns missing client-side IDs to an etapa and its pedidos.
func estamparEtapa(e entities.EtapaProyecto) (entities.EtapaProyecto, error) {
	var err error
	if e.ID == "" {
		if e.ID, err = entities.NuevaEtapaID(); err != nil {
			return entities.EtapaProyecto{}, err
		}
	}

	if len(e.Pedidos) > 0 {
		pedidos := make([]entities.PedidoCobertura, len(e.Pedidos))
		copy(pedidos, e.Pedidos)
		for i := range pedidos {
			if pedidos[i].ID == "" {
				if pedidos[i].ID, err = entities.NuevoPedidoID(); err != nil {
					return entities.EtapaProyecto{}, err
				}
			}
		}
		e.Pedidos = pedidos
	}

	return e, nil
}

// reemplazarOAgregarEtapa returns a fresh slice where the etapa with a
// matching ID is replaced in place, or the etapa is appended when no entry
// matches.
func reemplazarOAgregarEtapa(etapas []entities.EtapaProyecto, etapa entities.EtapaProyecto) []entities.EtapaProyecto {
	nuevas := make([]entities.EtapaProyecto, len(etapas))
	copy(nuevas, etapas)
	for i, e := range nuevas {
		if e.ID == etapa.ID {
			nuevas[i] = etapa
			return nuevas
		}
	}
	return append(nuevas, etapa)
}

func reemplazarOAgregarPedido(pedidos []entities.PedidoCobertura, pedido entities.PedidoCobertura) []entities.PedidoCobertura {
	nuevos := make([]entities.PedidoCobertura, len(pedidos))
	copy(nuevos, pedidos)
	for i, p := range nuevos {
		if p.ID == pedido.ID {
			nuevos[i] = pedido
			return nuevos
		}
	}
	return append(nuevos, pedido)
}

func indiceEtapa(etapas []entities.EtapaProyecto, etapaID string) int {
	for i, e := range etapas {
		if e.ID == etapaID {
			return i
		}
	}
	return -1
}
