package lib

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

const DefaultJLCURL = "https://jlcpcb.com/api/overseas-pcb-order/v1/shoppingCart/smtGood/"

type JLC struct {
	lock     *sync.Mutex
	client   *http.Client
	baseURL  string
	interval time.Duration
}

func NewJLC() *JLC {
	return &JLC{
		lock:     &sync.Mutex{},
		client:   &http.Client{Timeout: 30 * time.Second},
		baseURL:  DefaultJLCURL,
		interval: 1500 * time.Millisecond,
	}
}

// WithBaseURL points the client at another endpoint and drops the rate limit interval.
func (jlc *JLC) WithBaseURL(url string, interval time.Duration) *JLC {
	jlc.baseURL = url
	jlc.interval = interval

	return jlc
}

type jlcRequest interface {
	Method() string
}

type jlcSelectComponentListRequest struct {
	ComponentAttributes    []string `json:"componentAttributes"`
	ComponentBrand         string   `json:"componentBrand"`
	ComponentLibraryType   string   `json:"componentLibraryType"`
	ComponentSpecification *string  `json:"componentSpecification"`
	CurrentPage            int      `json:"currentPage"`
	FirstSortId            string   `json:"firstSortId"`
	FirstSortName          string   `json:"firstSortName"`
	FirstSortNameNew       string   `json:"firstSortNameNew"`
	Keyword                *string  `json:"keyword"`
	PageSize               int      `json:"pageSize"`
	SearchSource           string   `json:"searchSource"`
	SecondSortName         string   `json:"secondSortName"`
	StockFlag              *string  `json:"stockFlag"`
	StockSort              *string  `json:"stockSort"`
}

func (r jlcSelectComponentListRequest) Method() string { return "selectSmtComponentList" }

type jlcComponent struct {
	Code           string `json:"componentCode"`
	Model          string `json:"componentModelEn"`
	Specification  string `json:"componentSpecificationEn"`
	Brand          string `json:"componentBrandEn"`
	LibraryType    string `json:"componentLibraryType"`
	FirstSortName  string `json:"firstSortName"`
	SecondSortName string `json:"secondSortName"`
	Describe       string `json:"describe"`
}

func (c *jlcComponent) component() *LibraryComponent {
	libraryType := "Extended"
	if c.LibraryType == "base" {
		libraryType = "Basic"
	}

	return &LibraryComponent{
		ID:             c.Code,
		FirstCategory:  c.FirstSortName,
		SecondCategory: c.SecondSortName,
		MFRPart:        c.Model,
		Package:        c.Specification,
		Manufacturer:   c.Brand,
		LibraryType:    libraryType,
		Description:    c.Describe,
	}
}

type jlcSelectComponentListResponse struct {
	Code int `json:"code"`
	Data struct {
		ComponentPageInfo struct {
			EndRow          int             `json:"endRow"`
			HasNextPage     bool            `json:"hasNextPage"`
			HasPreviousPage bool            `json:"hasPreviousPage"`
			IsFirstPage     bool            `json:"isFirstPage"`
			IsLastPage      bool            `json:"isLastPage"`
			List            []*jlcComponent `json:"list"`
		} `json:"componentPageInfo"`
	} `json:"data"`
}

// Requests are serialized and spaced by the client interval; the lock is
// released once the interval has passed.
func (jlc *JLC) makeRequest(ctx context.Context, request jlcRequest, response interface{}) error {
	jlc.lock.Lock()
	go func() {
		defer jlc.lock.Unlock()
		time.Sleep(jlc.interval)
	}()

	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, jlc.baseURL+request.Method(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := jlc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jlc %s: unexpected status %s", request.Method(), resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(response)
}

func (jlc *JLC) SelectComponentList(ctx context.Context, keyword string) (map[string]*LibraryComponent, error) {
	request := jlcSelectComponentListRequest{
		CurrentPage:  1,
		PageSize:     25,
		SearchSource: "search",
		Keyword:      &keyword,
	}

	response := jlcSelectComponentListResponse{}
	if err := jlc.makeRequest(ctx, request, &response); err != nil {
		return nil, err
	}

	components := make(map[string]*LibraryComponent)
	for _, component := range response.Data.ComponentPageInfo.List {
		components[component.Code] = component.component()
	}

	return components, nil
}

func (jlc *JLC) Exact(ctx context.Context, cid string) (*LibraryComponent, error) {
	components, err := jlc.SelectComponentList(ctx, cid)
	if err != nil {
		return nil, err
	}

	component, ok := components[cid]
	if !ok {
		return nil, fmt.Errorf("%w: component %s", ErrNotFound, cid)
	}

	return component, nil
}

// SelectBaseComponentList pages through the basic parts list. Both channels
// are closed when paging stops; at most one error is sent.
func (jlc *JLC) SelectBaseComponentList(ctx context.Context) (<-chan *LibraryComponent, <-chan error) {
	size := 100
	components := make(chan *LibraryComponent, size)
	errs := make(chan error, 1)

	go func() {
		defer close(errs)
		defer close(components)

		page := 1
		for {
			request := jlcSelectComponentListRequest{
				ComponentLibraryType: "base",
				CurrentPage:          page,
				PageSize:             size,
				SearchSource:         "search",
			}

			response := jlcSelectComponentListResponse{}
			if err := jlc.makeRequest(ctx, request, &response); err != nil {
				errs <- fmt.Errorf("jlc page %d: %w", page, err)
				return
			}

			list := response.Data.ComponentPageInfo.List
			if len(list) == 0 {
				return
			}

			for _, component := range list {
				select {
				case components <- component.component():
				case <-ctx.Done():
					errs <- ctx.Err()
					return
				}
			}

			if response.Data.ComponentPageInfo.IsLastPage {
				return
			}

			page++
		}
	}()

	return components, errs
}
