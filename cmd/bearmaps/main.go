package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "lintang/bearmaps/docs"
	"lintang/bearmaps/pkg/engine/routingalgorithm"
	"lintang/bearmaps/pkg/kv"
	"lintang/bearmaps/pkg/osmparser"
	"lintang/bearmaps/pkg/raster"
	"lintang/bearmaps/pkg/server/rest"
	"lintang/bearmaps/pkg/server/rest/service"
	"lintang/bearmaps/pkg/streetmap"

	"github.com/cockroachdb/pebble"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"k8s.io/klog/v2"
)

var (
	listenAddr    = flag.String("listenaddr", ":5000", "server listen address")
	mapFile       = flag.String("f", "berkeley.osm.pbf", "openstreeetmap file buat road network graphnya (.osm.pbf atau .osm)")
	dbDir         = flag.String("db", "bearmapsDB", "directory pebble db buat snapshot street graph")
	searchTimeout = flag.Duration("timeout", 5*time.Second, "time budget satu A* query")
	reload        = flag.Bool("reload", false, "parse ulang file openstreetmap walaupun snapshot sudah ada")
)

//	@title			bearmaps lintangbs API
//	@version		1.0
//	@description	simple openstreetmap routing engine in go

//	@contact.name	lintang birda saputra
//	@description 	simple openstreetmap routing engine in go. A* untuk shortest path query, kd-tree untuk snapping koordinat ke street node

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := serverConfig{
		listenAddr:    *listenAddr,
		mapFile:       *mapFile,
		dbDir:         *dbDir,
		searchTimeout: *searchTimeout,
		reload:        *reload,
	}
	if err := run(ctx, cfg); err != nil {
		klog.ErrorS(err, "bearmaps server")
		klog.FlushAndExit(klog.ExitFlushTimeout, 1)
	}
}

type serverConfig struct {
	listenAddr    string
	mapFile       string
	dbDir         string
	searchTimeout time.Duration
	reload        bool
}

// run semua defer (termasuk close pebble) selesai sebelum return, baru main yang exit.
func run(ctx context.Context, cfg serverConfig) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	db, err := pebble.Open(cfg.dbDir, &pebble.Options{})
	if err != nil {
		return fmt.Errorf("open pebble db %s: %w", cfg.dbDir, err)
	}
	kvDB := kv.NewKVDB(db)
	defer kvDB.Close()

	g, err := loadStreetGraph(ctx, kvDB, cfg)
	if err != nil {
		return fmt.Errorf("load street graph %s: %w", cfg.mapFile, err)
	}

	ag, err := streetmap.NewAugmentedGraph(g)
	if err != nil {
		return fmt.Errorf("build augmented street graph: %w", err)
	}

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost%s/swagger/doc.json", cfg.listenAddr)), //The url pointing to API definition
	))

	routingAlgorithm := routingalgorithm.NewRouteAlgorithm(ag, cfg.searchTimeout)
	navigatorSvc := service.NewNavigationService(ag, routingAlgorithm, raster.NewBerkeleyRasterer())
	rest.NavigatorRouter(r, navigatorSvc, m)

	srv := &http.Server{Addr: cfg.listenAddr, Handler: r}
	go func() {
		klog.InfoS("server started", "addr", cfg.listenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.ErrorS(err, "http server")
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		klog.ErrorS(err, "shutdown http server")
	}
	klog.InfoS("server stopped")
	return nil
}

// loadStreetGraph pakai snapshot di pebble kalau ada, kalau tidak parse file openstreetmap lalu simpan snapshot.
func loadStreetGraph(ctx context.Context, kvDB *kv.KVDB, cfg serverConfig) (*streetmap.Graph, error) {
	if !cfg.reload && kvDB.HasSnapshot() {
		return kvDB.LoadGraph()
	}

	g, err := osmparser.NewOSMParser().Parse(ctx, cfg.mapFile)
	if err != nil {
		return nil, err
	}
	if err := kvDB.SaveGraph(g); err != nil {
		return nil, fmt.Errorf("save street graph snapshot: %w", err)
	}
	return g, nil
}
