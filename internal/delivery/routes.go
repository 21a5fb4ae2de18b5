package delivery

import (
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(
	r chi.Router,
	hPipeline *PipelineHandler,
	hAdv *AdvertiserHandler,
	hRules *RuleHandler,
	hAudio *AudioHandler,
	audioDir string,
) {
	r.Route("/", func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)

		// --- pipeline ---
		// trigger endpoints are rate-limited: each one may start a long
		// sequential TTS batch
		pr.Group(func(tr chi.Router) {
			tr.Use(httprate.LimitByIP(10, time.Minute))
			tr.Post("/pipeline/ingest", hPipeline.Ingest)
			tr.Post("/pipeline/drain", hPipeline.Drain)
			tr.Post("/pipeline/retry", hPipeline.Retry)
		})
		pr.Get("/pipeline/stats", hPipeline.Stats)

		// --- advertisers ---
		pr.Get("/advertisers", hAdv.List)
		pr.Post("/advertisers", hAdv.Create)
		pr.Get("/advertisers/{id}", hAdv.Get)
		pr.Put("/advertisers/{id}", hAdv.Update)
		pr.Delete("/advertisers/{id}", hAdv.Delete)

		// --- condition rules ---
		pr.Get("/rules", hRules.List)
		pr.Post("/rules", hRules.Create)
		pr.Get("/rules/{rule_id}", hRules.Get)
		pr.Put("/rules/{rule_id}", hRules.Update)
		pr.Delete("/rules/{rule_id}", hRules.Deactivate)

		// --- audios ---
		pr.Get("/audios", hAudio.ListRecent)
	})

	// generated files, web path matches what the pipeline stores
	fs := http.StripPrefix("/audio/", http.FileServer(http.Dir(audioDir)))
	r.Get("/audio/*", fs.ServeHTTP)
}
