package repository

import (
	"reflect"
	"testing"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
)

func Test_dataUriReaderRepo_Get(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    []byte
		wantErr bool
	}{
		{
			name:    "invalid schema",
			uri:     "https://url",
			wantErr: true,
		},
		{
			name:    "no data part",
			uri:     "data:application/json;base64,",
			wantErr: true,
		},
		{
			name:    "no data part",
			uri:     "data:application/json;base64",
			wantErr: true,
		},
		{
			name: "plain json",
			uri:  `data:application/json;utf8,{"name":"Sunset","attributes":[{"trait_type":"Category","value":"Art"}]}`,
			want: []byte(`{"name":"Sunset","attributes":[{"trait_type":"Category","value":"Art"}]}`),
		},
		{
			name:    "base64 json",
			uri:     "data:application/json;base64,eyJuYW1lIjoiU3Vuc2V0In0=",
			want:    []byte(`{"name":"Sunset"}`),
			wantErr: false,
		},
		{
			name: "percent-encoded json",
			uri:  "data:application/json,%7B%22name%22%3A%22Sunset%22%7D",
			want: []byte(`{"name":"Sunset"}`),
		},
		{
			name: "stray percent kept",
			uri:  "data:text/plain,100%",
			want: []byte("100%"),
		},
		{
			name:    "broken base64",
			uri:     "data:image/png;base64,%%%",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewDataUriReaderRepo()
			ctx := bCtx.Background()
			got, err := r.Get(ctx, tt.uri)
			if (err != nil) != tt.wantErr {
				t.Errorf("dataUriReaderRepo.Get() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("dataUriReaderRepo.Get() = %v, want %v", got, tt.want)
			}
		})
	}
}
