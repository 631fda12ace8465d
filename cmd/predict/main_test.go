package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"insurance_predict/pkg/errcodes"
	"insurance_predict/pkg/rest"
)

const testEnsemblePath = "../../internal/infrastructure/model/testdata/insurance_gbdt.json"

func run(args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	err := newApp(&stdout, &stderr).Run(append([]string{"predict"}, args...))

	return stdout.String(), err
}

func TestPredictLocal(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		args   []string
		output string
	}{
		{
			name:   "Defaults",
			args:   nil,
			output: "Prediction: Not Interested\nProbability of being interested: 0.33\n",
		},
		{
			name:   "Damaged vehicle",
			args:   []string{"--vehicle-damage-yes", "1"},
			output: "Prediction: Interested\nProbability of being interested: 0.82\n",
		},
		{
			name:   "Young driver",
			args:   []string{"--vehicle-damage-yes", "1", "--age", "18", "--gender", "Female"},
			output: "Prediction: Interested\nProbability of being interested: 0.67\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			args := append([]string{"--model", testEnsemblePath, "--model-format", "ensemble"}, tc.args...)

			output, err := run(args...)
			rq.NoError(err)
			rq.Equal(tc.output, output)
		})
	}
}

func TestPredictLocalErrors(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name string
		args []string
	}{
		{name: "Unknown gender", args: []string{"--gender", "Other"}},
		{name: "Age out of range", args: []string{"--age", "101"}},
		{name: "Flag not binary", args: []string{"--driving-license", "2"}},
		{name: "Unknown format", args: []string{"--model-format", "onnx"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			args := append([]string{"--model", testEnsemblePath, "--model-format", "ensemble"}, tc.args...)

			output, err := run(args...)
			rq.Error(err)
			rq.Empty(output)
		})
	}
}

func TestPredictLocalMissingModel(t *testing.T) {
	rq := require.New(t)

	output, err := run("--model", "testdata/missing.json", "--model-format", "ensemble")
	rq.Error(err)
	rq.Contains(err.Error(), "model is not loaded")
	rq.Empty(output)
}

func TestPredictRemote(t *testing.T) {
	rq := require.New(t)

	var got rest.PredictionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/v1/predictions", r.URL.Path)
		rq.NotEmpty(r.Header.Get("X-Trace-Id"))
		rq.NoError(json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"label":"Interested","interested":true,"probability":0.7312,"probabilityText":"0.73"}`))
	}))
	defer srv.Close()

	output, err := run("--server", srv.URL+"/", "--age", "55")
	rq.NoError(err)
	rq.Equal("Prediction: Interested\nProbability of being interested: 0.73\n", output)
	rq.Equal("Male", got.Gender)
	rq.Equal(55, *got.Age)
	rq.Equal(28, *got.RegionCode)
}

func TestPredictRemoteError(t *testing.T) {
	rq := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":"ModelNotLoaded","message":"model is not loaded","supportId":"abc"}`))
	}))
	defer srv.Close()

	output, err := run("--server", srv.URL)
	rq.ErrorIs(err, errRemote)
	rq.Contains(err.Error(), errcodes.ModelNotLoaded.String())
	rq.Empty(output)
}
