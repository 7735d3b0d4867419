package stats

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/radsim/roadstyle/log"
)

// StartHttpPProf serves the pprof handlers on bind.
func StartHttpPProf(bind string) {
	go func() {
		log.Println("[error]", http.ListenAndServe(bind, nil))
	}()
}
