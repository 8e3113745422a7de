package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"comunidad_dashboard/internal/adapter/http/handlers/mocks"
	"comunidad_dashboard/internal/domain/entities"
	"comunidad_dashboard/internal/domain/validation"
	"comunidad_dashboard/internal/usecase"
	"comunidad_dashboard/pkg/apierror"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func nuevoRouterWizard(h *WizardHandler) *gin.Engine {
	r := gin.New()
	w := r.Group("/v1/wizard")
	{
		w.POST("", h.IniciarSesion)
		w.GET("/:sesion_id", h.GetSesion)
		w.PUT("/:sesion_id/basicos", h.ActualizarDatosBasicos)
		w.POST("/:sesion_id/siguiente", h.Siguiente)
		w.POST("/:sesion_id/anterior", h.Anterior)
		w.PUT("/:sesion_id/etapas", h.GuardarEtapa)
		w.DELETE("/:sesion_id/etapas/:etapa_id", h.EliminarEtapa)
		w.PUT("/:sesion_id/etapas/:etapa_id/pedidos", h.GuardarPedido)
		w.DELETE("/:sesion_id/etapas/:etapa_id/pedidos/:pedido_id", h.EliminarPedido)
		w.POST("/:sesion_id/enviar", h.Enviar)
	}
	return r
}

func sesionDePrueba() entities.SesionBorrador {
	return entities.SesionBorrador{
		ID:   "ses-1",
		Paso: entities.PasoDatosBasicos,
		Borrador: entities.ProyectoBorrador{
			Etapas: []entities.EtapaProyecto{},
		},
	}
}

func TestWizardHandler_IniciarSesion(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWizardUseCase(ctrl)
	r := nuevoRouterWizard(NewWizardHandler(uc))

	uc.EXPECT().Iniciar(gomock.Any()).Return(sesionDePrueba(), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/wizard", nil))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["sesion_id"] != "ses-1" {
		t.Fatalf("unexpected body: %v", body)
	}
	if body["paso"] != float64(entities.PasoDatosBasicos) || body["total_pasos"] != float64(entities.TotalPasos) {
		t.Fatalf("unexpected steps: %v", body)
	}
}

func TestWizardHandler_GetSesion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := nuevoRouterWizard(NewWizardHandler(uc))

		uc.EXPECT().Obtener(gomock.Any(), "ses-1").Return(sesionDePrueba(), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/wizard/ses-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := nuevoRouterWizard(NewWizardHandler(uc))

		uc.EXPECT().Obtener(gomock.Any(), "no-existe").Return(entities.SesionBorrador{}, usecase.ErrSesionNoEncontrada)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/wizard/no-existe", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "SESION_NOT_FOUND" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestWizardHandler_ActualizarDatosBasicos(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := nuevoRouterWizard(NewWizardHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/v1/wizard/ses-1/basicos", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("partial drafts are stored without validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := nuevoRouterWizard(NewWizardHandler(uc))

		s := sesionDePrueba()
		s.Borrador.Titulo = "Casa"
		uc.EXPECT().ActualizarDatosBasicos(gomock.Any(), "ses-1", usecase.DatosBasicos{Titulo: "Casa"}).Return(s, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/wizard/ses-1/basicos", bytes.NewBufferString(`{"titulo":"Casa"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})
}

func TestWizardHandler_Siguiente(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("advances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := nuevoRouterWizard(NewWizardHandler(uc))

		s := sesionDePrueba()
		s.Paso = entities.PasoEtapas
		uc.EXPECT().Siguiente(gomock.Any(), "ses-1").Return(s, nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/wizard/ses-1/siguiente", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["paso"] != float64(entities.PasoEtapas) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("rejected gate returns 422 with field errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := nuevoRouterWizard(NewWizardHandler(uc))

		errs := []validation.FieldError{{Campo: "titulo", Mensaje: "El título debe tener al menos 5 caracteres"}}
		uc.EXPECT().Siguiente(gomock.Any(), "ses-1").Return(sesionDePrueba(), errs, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/wizard/ses-1/siguiente", nil))

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			Code    string `json:"code"`
			Errores []struct {
				Campo   string `json:"campo"`
				Mensaje string `json:"mensaje"`
			} `json:"errores"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if body.Code != "VALIDATION_ERROR" {
			t.Fatalf("unexpected code: %s", body.Code)
		}
		if len(body.Errores) != 1 || body.Errores[0].Campo != "titulo" {
			t.Fatalf("unexpected errors: %+v", body.Errores)
		}
	})
}

func TestWizardHandler_GuardarEtapa(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("saves a valid etapa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := nuevoRouterWizard(NewWizardHandler(uc))

		uc.EXPECT().GuardarEtapa(gomock.Any(), "ses-1", gomock.AssignableToTypeOf(entities.EtapaProyecto{})).DoAndReturn(
			func(_ context.Context, _ string, e entities.EtapaProyecto) (entities.SesionBorrador, []validation.FieldError, error) {
				if e.Nombre != "Etapa 1" || e.FechaInicio != "2024-01-01" {
					t.Fatalf("unexpected etapa: %+v", e)
				}
				s := sesionDePrueba()
				e.ID = "ETA-nueva12345"
				s.Borrador.Etapas = []entities.EtapaProyecto{e}
				return s, nil, nil
			},
		)

		payload := `{"nombre":"Etapa 1","descripcion":"Cimientos y estructura","fecha_inicio":"2024-01-01","fecha_fin":"2024-02-01"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/wizard/ses-1/etapas", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("unknown pedido tipo inside the etapa is a 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := nuevoRouterWizard(NewWizardHandler(uc))

		payload := `{"nombre":"Etapa 1","pedidos":[{"tipo":"combustible","descripcion":"Nafta"}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/wizard/ses-1/etapas", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("date violation returns 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := nuevoRouterWizard(NewWizardHandler(uc))

		errs := []validation.FieldError{{Campo: "fecha_fin", Mensaje: "La fecha de fin debe ser posterior a la fecha de inicio"}}
		uc.EXPECT().GuardarEtapa(gomock.Any(), "ses-1", gomock.Any()).Return(sesionDePrueba(), errs, nil)

		payload := `{"nombre":"Etapa 1","descripcion":"Cimientos y estructura","fecha_inicio":"2024-03-01","fecha_fin":"2024-02-01"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/wizard/ses-1/etapas", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestWizardHandler_GuardarPedido(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("narrows the flat payload into the tipo variant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := nuevoRouterWizard(NewWizardHandler(uc))

		uc.EXPECT().GuardarPedido(gomock.Any(), "ses-1", "ETA-1", gomock.AssignableToTypeOf(entities.PedidoCobertura{})).DoAndReturn(
			func(_ context.Context, _, _ string, p entities.PedidoCobertura) (entities.SesionBorrador, []validation.FieldError, error) {
				d, ok := p.Detalle.(entities.DetalleMateriales)
				if !ok {
					t.Fatalf("expected DetalleMateriales, got %T", p.Detalle)
				}
				if d.Cantidad != 50 || d.Unidad != "bolsas" {
					t.Fatalf("unexpected detalle: %+v", d)
				}
				return sesionDePrueba(), nil, nil
			},
		)

		payload := `{"tipo":"materiales","descripcion":"Cemento portland","cantidad":50,"unidad":"bolsas","monto":999,"moneda":"USD"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/wizard/ses-1/etapas/ETA-1/pedidos", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("unknown etapa is a 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := nuevoRouterWizard(NewWizardHandler(uc))

		uc.EXPECT().GuardarPedido(gomock.Any(), "ses-1", "ETA-x", gomock.Any()).
			Return(entities.SesionBorrador{}, nil, usecase.ErrEtapaNoEncontrada)

		payload := `{"tipo":"mano_obra","descripcion":"Albañiles"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/wizard/ses-1/etapas/ETA-x/pedidos", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "ETAPA_NOT_FOUND" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestWizardHandler_Eliminar(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWizardUseCase(ctrl)
	r := nuevoRouterWizard(NewWizardHandler(uc))

	uc.EXPECT().EliminarEtapa(gomock.Any(), "ses-1", "ETA-1").Return(sesionDePrueba(), nil)
	uc.EXPECT().EliminarPedido(gomock.Any(), "ses-1", "ETA-1", "PED-1").Return(sesionDePrueba(), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/wizard/ses-1/etapas/ETA-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/wizard/ses-1/etapas/ETA-1/pedidos/PED-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestWizardHandler_Enviar(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := nuevoRouterWizard(NewWizardHandler(uc))

		reiniciada := sesionDePrueba()
		reiniciada.ProyectoCreadoID = "abc123"
		uc.EXPECT().Enviar(gomock.Any(), "ses-1").Return(usecase.ResultadoEnvio{
			Proyecto: entities.Proyecto{ID: "abc123"},
			Sesion:   reiniciada,
		}, nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/wizard/ses-1/enviar", nil))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var body struct {
			ProyectoID string `json:"proyecto_id"`
			Mensaje    string `json:"mensaje"`
			Sesion     struct {
				Paso             int    `json:"paso"`
				ProyectoCreadoID string `json:"proyecto_creado_id"`
			} `json:"sesion"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if body.ProyectoID != "abc123" || body.Mensaje != "Proyecto creado exitosamente" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if body.Sesion.Paso != entities.PasoDatosBasicos || body.Sesion.ProyectoCreadoID != "abc123" {
			t.Fatalf("unexpected session: %+v", body.Sesion)
		}
	})

	t.Run("wrong step is a 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := nuevoRouterWizard(NewWizardHandler(uc))

		uc.EXPECT().Enviar(gomock.Any(), "ses-1").Return(usecase.ResultadoEnvio{}, nil, usecase.ErrEnvioFueraDePaso)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/wizard/ses-1/enviar", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "SUBMIT_WRONG_STEP" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("in-flight submit is a 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := nuevoRouterWizard(NewWizardHandler(uc))

		uc.EXPECT().Enviar(gomock.Any(), "ses-1").Return(usecase.ResultadoEnvio{}, nil, usecase.ErrEnvioEnCurso)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/wizard/ses-1/enviar", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("incomplete draft is a 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := nuevoRouterWizard(NewWizardHandler(uc))

		errs := []validation.FieldError{{Campo: "etapas", Mensaje: "Agrega al menos una etapa"}}
		uc.EXPECT().Enviar(gomock.Any(), "ses-1").Return(usecase.ResultadoEnvio{Sesion: sesionDePrueba()}, errs, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/wizard/ses-1/enviar", nil))

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("backend failure passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := nuevoRouterWizard(NewWizardHandler(uc))

		fallo := apierror.Normalize(map[string]any{"message": "backend exploded"}, http.StatusInternalServerError, nil)
		uc.EXPECT().Enviar(gomock.Any(), "ses-1").Return(usecase.ResultadoEnvio{}, nil, fallo)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/wizard/ses-1/enviar", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "BACKEND_ERROR" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
