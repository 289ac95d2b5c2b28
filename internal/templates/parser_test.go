package templates

import (
	"errors"
	"reflect"
	"testing"

	e "github.com/joaompneves/nx-dotnet/pkg/errors"
)

const sampleListing = `These templates matched your input:

Template Name         Short Name  Language    Tags
--------------------  ----------  ----------  ----------
ASP.NET Core Web API  webapi      [C#]        Web/API
Console App           console     [C#],F#,VB  Common/Console

Examples:
    dotnet new webapi
`

func TestParse(t *testing.T) {
	got, err := Parse(sampleListing)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []Template{
		{
			Name:       "ASP.NET Core Web API",
			ShortNames: []string{"webapi"},
			Languages:  []string{"C#"},
			Tags:       []string{"Web", "API"},
		},
		{
			Name:       "Console App",
			ShortNames: []string{"console"},
			Languages:  []string{"C#", "F#", "VB"},
			Tags:       []string{"Common", "Console"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParse_NoSeparator(t *testing.T) {
	_, err := Parse("Usage: dotnet new [options]\n\nno table here\n")
	if err == nil {
		t.Fatal("Parse() expected error for output without template table")
	}
	var ctlErr *e.CtlError
	if !errors.As(err, &ctlErr) || ctlErr.Code != e.ErrTemplateParse {
		t.Fatalf("Parse() error = %v, want ErrTemplateParse", err)
	}
}

func TestParse_ShortRowsTolerated(t *testing.T) {
	// Rows narrower than the separator still parse; missing columns are empty.
	out := "Name      Short\n--------  -----\nWorker    worker\n"
	got, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "Worker" {
		t.Fatalf("Parse() = %+v", got)
	}
	if !reflect.DeepEqual(got[0].ShortNames, []string{"worker"}) {
		t.Fatalf("ShortNames = %v", got[0].ShortNames)
	}
}
