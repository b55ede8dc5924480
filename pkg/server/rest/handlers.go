package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"lintang/bearmaps/pkg/datastructure"
	"lintang/bearmaps/pkg/raster"
	"lintang/bearmaps/pkg/server"
	"lintang/bearmaps/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type NavigationService interface {
	ShortestPath(ctx context.Context, srcLat, srcLon float64,
		dstLat float64, dstLon float64) (service.ShortestPathResult, error)
	ManyToMany(ctx context.Context, sources, targets []datastructure.Coordinate) ([]service.TargetResult, error)
	Nearest(ctx context.Context, lat, lon float64) (datastructure.StreetNode, error)
	LocationsByPrefix(ctx context.Context, prefix string) ([]string, error)
	Locations(ctx context.Context, locationName string) ([]datastructure.StreetNode, error)
	Raster(ctx context.Context, req raster.RasterRequest) (raster.RasterResult, error)
}

type NavigationHandler struct {
	svc          NavigationService
	promeMetrics *metrics
}

func NavigatorRouter(r chi.Router, svc NavigationService, m *metrics) {
	handler := &NavigationHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api/navigations", func(r chi.Router) {
			r.Post("/shortest-path", handler.shortestPath)
			r.Post("/many-to-many", handler.ManyToManyQuery)
			r.Post("/nearest", handler.nearest)
		})
		r.Route("/api/locations", func(r chi.Router) {
			r.Get("/", handler.locations)
			r.Get("/prefix", handler.locationsByPrefix)
		})
		r.Get("/api/raster", handler.raster)
	})
}

// SortestPathRequest model info
//
//	@Description	request body untuk shortest path query antara 2 tempat di openstreetmap
//
// pointer biar lat/lon 0 tetap valid, nil = field tidak dikirim.
type SortestPathRequest struct {
	SrcLat *float64 `json:"src_lat" validate:"required,lt=90,gt=-90" swaggertype:"number"`
	SrcLon *float64 `json:"src_lon" validate:"required,lt=180,gt=-180" swaggertype:"number"`
	DstLat *float64 `json:"dst_lat" validate:"required,lt=90,gt=-90" swaggertype:"number"`
	DstLon *float64 `json:"dst_lon" validate:"required,lt=180,gt=-180" swaggertype:"number"`
}

func (s *SortestPathRequest) Bind(r *http.Request) error {
	if s.SrcLat == nil || s.SrcLon == nil || s.DstLat == nil || s.DstLon == nil {
		return errors.New("invalid request")
	}
	return nil
}

// ShortestPathResponse	model info
//
//	@Description	response body untuk shortest path query antara 2 tempat di openstreetmap
type ShortestPathResponse struct {
	Path           string                     `json:"path"`
	Dist           float64                    `json:"distance"`
	Found          bool                       `json:"found"`
	Outcome        string                     `json:"outcome"`
	StatesExplored int                        `json:"states_explored"`
	ElapsedSeconds float64                    `json:"elapsed_seconds"`
	Route          []datastructure.Coordinate `json:"route"`
	NodeIDs        []int64                    `json:"node_ids"`
}

func NewShortestPathResponse(res service.ShortestPathResult) *ShortestPathResponse {
	return &ShortestPathResponse{
		Path:           res.Path,
		Dist:           res.Dist,
		Found:          res.Found,
		Outcome:        res.Outcome,
		StatesExplored: res.StatesExplored,
		ElapsedSeconds: res.ElapsedSeconds,
		Route:          res.Route,
		NodeIDs:        res.NodeIDs,
	}
}

// shortestPath
//
//	@Summary		shortest path query antara 2 tempat di openstreetmap pakai A*.
//	@Description	shortest path query antara 2 tempat di openstreetmap. src & dst di snap ke street node terdekat lalu dicari pakai A*
//	@Tags			navigations
//	@Param			body	body	SortestPathRequest	true	"request body query shortest path antara 2 tempat"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/shortest-path [post]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) shortestPath(w http.ResponseWriter, r *http.Request) {
	data := &SortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !validateRequest(w, r, *data) {
		return
	}

	res, err := h.svc.ShortestPath(r.Context(), *data.SrcLat, *data.SrcLon, *data.DstLat, *data.DstLon)
	if res.Outcome != "" {
		h.promeMetrics.SPQueryCount.WithLabelValues(res.Outcome).Inc()
	}
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewShortestPathResponse(res))
}

// Coord model info
//
//	@Description	model untuk koordinat
type Coord struct {
	Lat *float64 `json:"lat" validate:"required,lt=90,gt=-90" swaggertype:"number"`
	Lon *float64 `json:"lon" validate:"required,lt=180,gt=-180" swaggertype:"number"`
}

func NewCoord(lat, lon float64) Coord {
	return Coord{Lat: &lat, Lon: &lon}
}

func (c Coord) valid() bool {
	return c.Lat != nil && c.Lon != nil
}

func (c Coord) toCoordinate() datastructure.Coordinate {
	return datastructure.NewCoordinate(*c.Lat, *c.Lon)
}

// ManyToManyQueryRequest model info
//
//	@Description	request body untuk query shortest path many to many
type ManyToManyQueryRequest struct {
	Sources []Coord `json:"sources" validate:"required,dive"`
	Targets []Coord `json:"targets" validate:"required,dive"`
}

func (s *ManyToManyQueryRequest) Bind(r *http.Request) error {
	if len(s.Sources) == 0 || len(s.Targets) == 0 {
		return errors.New("invalid request")
	}
	for _, c := range s.Sources {
		if !c.valid() {
			return errors.New("invalid request")
		}
	}
	for _, c := range s.Targets {
		if !c.valid() {
			return errors.New("invalid request")
		}
	}
	return nil
}

// TargetRes model info
//
//	@Description	model untuk satu pasangan source target di query shortest path many to many
type TargetRes struct {
	Source  datastructure.Coordinate `json:"source"`
	Target  datastructure.Coordinate `json:"target"`
	Dist    float64                  `json:"distance"`
	Found   bool                     `json:"found"`
	Outcome string                   `json:"outcome"`
}

// ManyToManyQueryResponse model info
//
//	@Description	response body untuk query shortest path many to many
type ManyToManyQueryResponse struct {
	Results []TargetRes `json:"results"`
}

func RenderManyToManyQueryResponse(res []service.TargetResult) *ManyToManyQueryResponse {
	results := make([]TargetRes, 0, len(res))
	for _, t := range res {
		results = append(results, TargetRes{
			Source:  t.Source,
			Target:  t.Target,
			Dist:    t.Dist,
			Found:   t.Found,
			Outcome: t.Outcome,
		})
	}
	return &ManyToManyQueryResponse{Results: results}
}

// ManyToManyQuery
//
//	@Summary		many to many query shortest path. Mencari shortest path ke setiap target untuk setiap source
//	@Description	many to many query shortest path. setiap pasangan source target dicari pakai A* di worker pool
//	@Tags			navigations
//	@Param			body	body	ManyToManyQueryRequest	true	"request body query shortest path many to many"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/many-to-many [post]
//	@Success		200	{object}	ManyToManyQueryResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) ManyToManyQuery(w http.ResponseWriter, r *http.Request) {
	data := &ManyToManyQueryRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !validateRequest(w, r, *data) {
		return
	}

	sources, targets := []datastructure.Coordinate{}, []datastructure.Coordinate{}
	for _, s := range data.Sources {
		sources = append(sources, s.toCoordinate())
	}
	for _, d := range data.Targets {
		targets = append(targets, d.toCoordinate())
	}

	results, err := h.svc.ManyToMany(r.Context(), sources, targets)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	for _, res := range results {
		h.promeMetrics.SPQueryCount.WithLabelValues(res.Outcome).Inc()
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderManyToManyQueryResponse(results))
}

// NearestRequest model info
//
//	@Description	request body untuk query street node terdekat
type NearestRequest struct {
	Coord
}

func (s *NearestRequest) Bind(r *http.Request) error {
	if !s.valid() {
		return errors.New("invalid request")
	}
	return nil
}

// NodeRes model info
//
//	@Description	model untuk street node
type NodeRes struct {
	ID   int64   `json:"id"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name,omitempty"`
}

func newNodeRes(n datastructure.StreetNode) NodeRes {
	return NodeRes{ID: n.ID, Lat: n.Lat, Lon: n.Lon, Name: n.Name}
}

// nearest
//
//	@Summary		street node routable terdekat dari suatu koordinat.
//	@Description	street node routable terdekat dari suatu koordinat, dicari pakai kd-tree
//	@Tags			navigations
//	@Param			body	body	NearestRequest	true	"request body query nearest street node"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/nearest [post]
//	@Success		200	{object}	NodeRes
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) nearest(w http.ResponseWriter, r *http.Request) {
	data := &NearestRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !validateRequest(w, r, *data) {
		return
	}

	n, err := h.svc.Nearest(r.Context(), *data.Lat, *data.Lon)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, newNodeRes(n))
}

// LocationsByPrefixResponse model info
//
//	@Description	response body untuk autocomplete nama lokasi
type LocationsByPrefixResponse struct {
	Locations []string `json:"locations"`
}

// locationsByPrefix
//
//	@Summary		autocomplete nama lokasi.
//	@Description	nama lengkap semua lokasi yang cleaned name nya diawali term
//	@Tags			locations
//	@Param			term	query	string	true	"prefix nama lokasi"
//	@Produce		application/json
//	@Router			/locations/prefix [get]
//	@Success		200	{object}	LocationsByPrefixResponse
//	@Failure		400	{object}	ErrResponse
func (h *NavigationHandler) locationsByPrefix(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	if term == "" {
		render.Render(w, r, ErrInvalidRequest(errors.New("term is required")))
		return
	}

	locations, err := h.svc.LocationsByPrefix(r.Context(), term)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &LocationsByPrefixResponse{Locations: locations})
}

// LocationsResponse model info
//
//	@Description	response body untuk pencarian lokasi berdasarkan nama
type LocationsResponse struct {
	Locations []NodeRes `json:"locations"`
}

// locations
//
//	@Summary		cari lokasi berdasarkan nama.
//	@Description	semua street node yang cleaned name nya sama dengan cleaned name
//	@Tags			locations
//	@Param			name	query	string	true	"nama lokasi"
//	@Produce		application/json
//	@Router			/locations [get]
//	@Success		200	{object}	LocationsResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) locations(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		render.Render(w, r, ErrInvalidRequest(errors.New("name is required")))
		return
	}

	nodes, err := h.svc.Locations(r.Context(), name)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	locations := make([]NodeRes, 0, len(nodes))
	for _, n := range nodes {
		locations = append(locations, newNodeRes(n))
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &LocationsResponse{Locations: locations})
}

// RasterRequest model info
//
//	@Description	query params untuk raster map tile
type RasterRequest struct {
	ULLat float64 `validate:"lt=90,gt=-90"`
	ULLon float64 `validate:"lt=180,gt=-180"`
	LRLat float64 `validate:"lt=90,gt=-90"`
	LRLon float64 `validate:"lt=180,gt=-180"`
	W     float64 `validate:"required,gt=0"`
	H     float64 `validate:"required,gt=0"`
}

func parseRasterRequest(r *http.Request) (*RasterRequest, error) {
	q := r.URL.Query()
	params := []string{"ullat", "ullon", "lrlat", "lrlon", "w", "h"}
	vals := make([]float64, len(params))
	for i, p := range params {
		v, err := strconv.ParseFloat(q.Get(p), 64)
		if err != nil {
			return nil, server.WrapErrorf(err, server.ErrBadParamInput, "query param %s must be a number", p)
		}
		vals[i] = v
	}
	return &RasterRequest{ULLat: vals[0], ULLon: vals[1], LRLat: vals[2], LRLon: vals[3], W: vals[4], H: vals[5]}, nil
}

// RasterResponse model info
//
//	@Description	response body raster, render_grid = nama file tile per baris
type RasterResponse struct {
	RenderGrid   [][]string `json:"render_grid"`
	RasterULLon  float64    `json:"raster_ul_lon"`
	RasterULLat  float64    `json:"raster_ul_lat"`
	RasterLRLon  float64    `json:"raster_lr_lon"`
	RasterLRLat  float64    `json:"raster_lr_lat"`
	Depth        int        `json:"depth"`
	QuerySuccess bool       `json:"query_success"`
}

// raster
//
//	@Summary		grid map tile untuk viewport user.
//	@Description	grid map tile yang menutupi query box dengan resolusi yang cukup untuk lebar viewport user
//	@Tags			raster
//	@Param			ullat	query	number	true	"upper left latitude"
//	@Param			ullon	query	number	true	"upper left longitude"
//	@Param			lrlat	query	number	true	"lower right latitude"
//	@Param			lrlon	query	number	true	"lower right longitude"
//	@Param			w		query	number	true	"lebar viewport (pixel)"
//	@Param			h		query	number	true	"tinggi viewport (pixel)"
//	@Produce		application/json
//	@Router			/raster [get]
//	@Success		200	{object}	RasterResponse
//	@Failure		400	{object}	ErrResponse
func (h *NavigationHandler) raster(w http.ResponseWriter, r *http.Request) {
	data, err := parseRasterRequest(r)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	if !validateRequest(w, r, *data) {
		return
	}

	res, err := h.svc.Raster(r.Context(), raster.RasterRequest{
		Bounds: raster.Bounds{ULLat: data.ULLat, ULLon: data.ULLon, LRLat: data.LRLat, LRLon: data.LRLon},
		Width:  data.W,
		Height: data.H,
	})
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &RasterResponse{
		RenderGrid:   res.RenderGrid,
		RasterULLon:  res.RasterULLon,
		RasterULLat:  res.RasterULLat,
		RasterLRLon:  res.RasterLRLon,
		RasterLRLat:  res.RasterLRLat,
		Depth:        res.Depth,
		QuerySuccess: res.QuerySuccess,
	})
}

// ErrResponse model info
//
//	@Description	model untuk error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	switch getStatusCode(err) {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusConflict:
		statusText = "Resource conflict."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: getStatusCode(err),
		StatusText:     statusText,
		ErrorText:      err.Error(),
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	}
	switch ierr.Code() {
	case server.ErrInternalServerError:
		return http.StatusInternalServerError
	case server.ErrNotFound:
		return http.StatusNotFound
	case server.ErrConflict:
		return http.StatusConflict
	case server.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// validateRequest render ErrValidation (pesan sudah di translate ke english) kalau data tidak valid.
func validateRequest(w http.ResponseWriter, r *http.Request, data interface{}) bool {
	validate := validator.New()
	err := validate.Struct(data)
	if err == nil {
		return true
	}
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	vv := translateError(err, trans)
	render.Render(w, r, ErrValidation(err, vv))
	return false
}

func translateError(err error, trans ut.Translator) (errs []error) {
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
