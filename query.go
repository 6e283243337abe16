package taxicompare

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/theoremus-urban-solutions/taxi-compare/formatter"
	"github.com/theoremus-urban-solutions/taxi-compare/views"
)

// requestFormat reads the optional format query parameter
func requestFormat(r *http.Request) (formatter.Format, error) {
	return formatter.ParseFormat(r.URL.Query().Get("format"))
}

// requestView reads the view name route variable
func requestView(r *http.Request) (views.Name, error) {
	return views.ParseName(mux.Vars(r)["view"])
}

// viewLabel is the metrics label of a view request. Unknown names share one
// label to keep the series bounded.
func viewLabel(r *http.Request) string {
	name, err := requestView(r)
	if err != nil {
		return "unknown"
	}
	return string(name)
}
