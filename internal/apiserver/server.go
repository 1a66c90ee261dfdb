// Copyright © 2021 Kaleido, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package apiserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/ghodss/yaml"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kaleido-io/emissionsledger/internal/apispec"
	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/engine"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
	"github.com/kaleido-io/emissionsledger/internal/log"
	"github.com/kaleido-io/emissionsledger/internal/metrics"
)

var (
	apiConfigPrefix     = config.NewPluginConfig("http")
	metricsConfigPrefix = config.NewPluginConfig("metrics")
)

// Server is the external interface for the API Server
type Server interface {
	Serve(ctx context.Context, e engine.Engine) error
}

type apiServer struct {
	apiTimeout     time.Duration
	apiMaxTimeout  time.Duration
	maxRequestBody int64
	errorDetail    bool
	metricsEnabled bool
}

type restError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// InitConfig registers the listener config of the API and metrics servers. It must be called after
// the config file is read, as reading the file resets all defaults.
func InitConfig() {
	initHTTPConfPrefix(apiConfigPrefix, 5000)
	initHTTPConfPrefix(metricsConfigPrefix, 6000)
}

func NewAPIServer() Server {
	return &apiServer{
		apiTimeout:     config.GetDuration(config.APIRequestTimeout),
		apiMaxTimeout:  config.GetDuration(config.APIRequestMaxTimeout),
		maxRequestBody: config.GetByteSize(config.APIMaxRequestBody),
		errorDetail:    config.GetBool(config.APIErrorDetail),
		metricsEnabled: config.GetBool(config.MetricsEnabled),
	}
}

// Serve is the main entry point for the API Server
func (as *apiServer) Serve(ctx context.Context, e engine.Engine) error {
	httpErrChan := make(chan error)
	metricsErrChan := make(chan error)

	apiHTTPServer, err := newHTTPServer(ctx, "api", as.createMuxRouter(e), httpErrChan, apiConfigPrefix)
	if err != nil {
		return err
	}
	go apiHTTPServer.serveHTTP(ctx)

	if as.metricsEnabled {
		metricsHTTPServer, err := newHTTPServer(ctx, "metrics", as.createMetricsMuxRouter(), metricsErrChan, metricsConfigPrefix)
		if err != nil {
			return err
		}
		go metricsHTTPServer.serveHTTP(ctx)
	}

	return as.waitForServerStop(httpErrChan, metricsErrChan)
}

func (as *apiServer) waitForServerStop(httpErrChan, metricsErrChan chan error) error {
	select {
	case err := <-httpErrChan:
		return err
	case err := <-metricsErrChan:
		return err
	}
}

func (as *apiServer) getParams(req *http.Request, route *apispec.Route) (queryParams, pathParams map[string]string, err error) {
	queryParams = make(map[string]string)
	pathParams = make(map[string]string)
	if len(route.PathParams) > 0 {
		v := mux.Vars(req)
		for _, pp := range route.PathParams {
			pathParams[pp.Name] = v[pp.Name]
		}
	}
	for _, qp := range route.QueryParams {
		val, exists := req.URL.Query()[qp.Name]
		if qp.IsBool {
			b := false
			if exists {
				if len(val) == 0 || val[0] == "" {
					b = true
				} else if b, err = strconv.ParseBool(val[0]); err != nil {
					return nil, nil, i18n.NewError(req.Context(), i18n.MsgInvalidBoolParam, qp.Name)
				}
			}
			queryParams[qp.Name] = strconv.FormatBool(b)
		} else if exists && len(val) > 0 {
			queryParams[qp.Name] = val[0]
		}
	}
	return queryParams, pathParams, nil
}

func (as *apiServer) decodeInput(req *http.Request, res http.ResponseWriter, jsonInput interface{}) error {
	ctx := req.Context()
	contentType := strings.ToLower(req.Header.Get("Content-Type"))
	if !strings.HasPrefix(contentType, "application/json") {
		return i18n.NewError(ctx, i18n.MsgInvalidContentType)
	}
	body := http.MaxBytesReader(res, req.Body, as.maxRequestBody)
	err := json.NewDecoder(body).Decode(&jsonInput)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return i18n.NewError(ctx, i18n.MsgRequestTooLarge, units.HumanSize(float64(as.maxRequestBody)))
		}
		return i18n.WrapError(ctx, err, i18n.MsgJSONDecodeFailed)
	}
	return nil
}

func (as *apiServer) routeHandler(e engine.Engine, route *apispec.Route) http.HandlerFunc {
	return as.apiWrapper(func(res http.ResponseWriter, req *http.Request) (int, error) {

		var jsonInput interface{}
		if route.JSONInputValue != nil {
			jsonInput = route.JSONInputValue()
		}
		if jsonInput != nil && req.ContentLength != 0 && req.Method != http.MethodGet && req.Method != http.MethodDelete {
			if err := as.decodeInput(req, res, jsonInput); err != nil {
				return http.StatusBadRequest, err
			}
		}

		queryParams, pathParams, err := as.getParams(req, route)
		if err != nil {
			return http.StatusBadRequest, err
		}

		r := &apispec.APIRequest{
			Ctx:           req.Context(),
			E:             e,
			Req:           req,
			PP:            pathParams,
			QP:            queryParams,
			Input:         jsonInput,
			SuccessStatus: http.StatusOK,
		}
		if route.JSONOutputCode != 0 {
			r.SuccessStatus = route.JSONOutputCode
		}
		output, err := route.JSONHandler(r)
		if err != nil {
			return http.StatusInternalServerError, err
		}
		return as.handleOutput(req.Context(), res, r.SuccessStatus, output)
	})
}

func (as *apiServer) handleOutput(ctx context.Context, res http.ResponseWriter, status int, output interface{}) (int, error) {
	vOutput := reflect.ValueOf(output)
	outputKind := vOutput.Kind()
	isNil := output == nil || outputKind == reflect.Invalid || (outputKind == reflect.Ptr && vOutput.IsNil())
	if isNil {
		if status != http.StatusNoContent {
			return http.StatusNotFound, i18n.NewError(ctx, i18n.Msg404NoResult)
		}
		res.WriteHeader(http.StatusNoContent)
		return status, nil
	}
	b, err := json.Marshal(output)
	if err != nil {
		err = i18n.WrapError(ctx, err, i18n.MsgResponseMarshalError)
		log.L(ctx).Errorf(err.Error())
		return http.StatusInternalServerError, err
	}
	res.Header().Add("Content-Type", "application/json")
	res.WriteHeader(status)
	_, _ = res.Write(b)
	return status, nil
}

// parseTimeout accepts a Go duration string, or a number of seconds
func parseTimeout(s string) (time.Duration, error) {
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	return time.ParseDuration(s)
}

func (as *apiServer) getTimeout(req *http.Request) time.Duration {
	// Signing and ledger submission both honour the request context, so an abandoned
	// request stops consuming server resources once this expires
	reqTimeout := as.apiTimeout
	reqTimeoutHeader := req.Header.Get("Request-Timeout")
	if reqTimeoutHeader != "" {
		customTimeout, err := parseTimeout(reqTimeoutHeader)
		if err != nil || customTimeout <= 0 {
			log.L(req.Context()).Warnf("%s", i18n.ExpandWithCode(req.Context(), i18n.MsgInvalidRequestTimeout, reqTimeoutHeader))
		} else {
			reqTimeout = customTimeout
			if reqTimeout > as.apiMaxTimeout {
				reqTimeout = as.apiMaxTimeout
			}
		}
	}
	return reqTimeout
}

func (as *apiServer) errorBody(err error) *restError {
	msg := i18n.TopMessage(err)
	if as.errorDetail {
		msg = err.Error()
	}
	return &restError{Success: false, Error: msg}
}

func (as *apiServer) apiWrapper(handler func(res http.ResponseWriter, req *http.Request) (status int, err error)) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {

		reqTimeout := as.getTimeout(req)
		ctx, cancel := context.WithTimeout(req.Context(), reqTimeout)
		httpReqID := fftypes.ShortID()
		ctx = log.WithLogField(ctx, "httpreq", httpReqID)
		req = req.WithContext(ctx)
		defer cancel()

		l := log.L(ctx)
		l.Infof("--> %s %s", req.Method, req.URL.Path)
		startTime := time.Now()
		status, err := handler(res, req)
		durationMS := float64(time.Since(startTime)) / float64(time.Millisecond)
		if err == nil {
			l.Infof("<-- %s %s [%d] (%.2fms)", req.Method, req.URL.Path, status, durationMS)
			return
		}

		// The coded error carries its own status, falling back to anything in its cause chain
		if statusHint, ok := i18n.StatusHint(err); ok {
			status = statusHint
		}

		if status != http.StatusRequestTimeout && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			l.Errorf("Request failed and context is closed. Returning %d (overriding %d): %s", http.StatusRequestTimeout, status, err)
			status = http.StatusRequestTimeout
			err = i18n.WrapError(ctx, err, i18n.MsgRequestTimeout, httpReqID, durationMS)
		}

		if status < 300 {
			status = http.StatusInternalServerError
		}
		l.Infof("<-- %s %s [%d] (%.2fms): %s", req.Method, req.URL.Path, status, durationMS, err)
		res.Header().Set("Content-Type", "application/json")
		res.WriteHeader(status)
		_ = json.NewEncoder(res).Encode(as.errorBody(err))
	}
}

func (as *apiServer) notFoundHandler(res http.ResponseWriter, req *http.Request) (status int, err error) {
	return http.StatusNotFound, i18n.NewError(req.Context(), i18n.Msg404NotFound)
}

func (as *apiServer) getPublicURL(conf config.Prefix, pathPrefix string) string {
	publicURL := conf.GetString(HTTPConfPublicURL)
	if publicURL == "" {
		proto := "https"
		if !conf.GetBool(HTTPConfTLSEnabled) {
			proto = "http"
		}
		publicURL = fmt.Sprintf("%s://%s:%s", proto, conf.GetString(HTTPConfAddress), conf.GetString(HTTPConfPort))
	}
	if pathPrefix != "" {
		publicURL += "/" + pathPrefix
	}
	return publicURL
}

func (as *apiServer) swaggerHandler(routes []*apispec.Route, url string) func(res http.ResponseWriter, req *http.Request) (status int, err error) {
	return func(res http.ResponseWriter, req *http.Request) (status int, err error) {
		doc := apispec.SwaggerGen(req.Context(), routes, url)
		var b []byte
		if mux.Vars(req)["ext"] == ".json" {
			res.Header().Add("Content-Type", "application/json")
			b, err = json.Marshal(doc)
		} else {
			res.Header().Add("Content-Type", "application/x-yaml")
			b, err = yaml.Marshal(doc)
		}
		if err != nil {
			return http.StatusInternalServerError, i18n.WrapError(req.Context(), err, i18n.MsgResponseMarshalError)
		}
		_, _ = res.Write(b)
		return http.StatusOK, nil
	}
}

func (as *apiServer) createMuxRouter(e engine.Engine) *mux.Router {
	r := mux.NewRouter()
	if as.metricsEnabled {
		r.Use(metrics.GetRestServerInstrumentation().Middleware)
	}

	for _, route := range routes {
		if route.JSONHandler != nil {
			r.HandleFunc(fmt.Sprintf("/api/v1/%s", route.Path), as.routeHandler(e, route)).
				Methods(route.Method)
		}
	}
	publicURL := as.getPublicURL(apiConfigPrefix, "api/v1")
	r.HandleFunc(`/api/swagger{ext:\.yaml|\.json|}`, as.apiWrapper(as.swaggerHandler(routes, publicURL)))

	r.NotFoundHandler = as.apiWrapper(as.notFoundHandler)
	return r
}

func (as *apiServer) createMetricsMuxRouter() *mux.Router {
	r := mux.NewRouter()

	r.Path(config.GetString(config.MetricsPath)).Handler(promhttp.InstrumentMetricHandler(metrics.Registry(),
		promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))

	return r
}
