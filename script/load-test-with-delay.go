package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/google/uuid"
)

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	Replayed     bool
	ResponseTime time.Duration
	StatusCode   int
	ErrorCode    int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	ReplayedRequests   int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// TransferScenario defines a transfer amount bucket
type TransferScenario struct {
	Name   string
	Amount string
}

type client struct {
	http    *http.Client
	baseURL string
	token   string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of transfers to submit")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	username := flag.String("user", "admin", "Username owning the cards")
	password := flag.String("pass", "", "Password for the user")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	replayPct := flag.Int("replay", 10, "Percentage of transfers resubmitted with a used request id")
	flag.Parse()

	c := &client{http: &http.Client{Timeout: 10 * time.Second}, baseURL: *baseURL}
	if err := c.login(*username, *password); err != nil {
		fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
		os.Exit(1)
	}

	before, err := c.cards()
	if err != nil {
		fmt.Fprintf(os.Stderr, "listing cards failed: %v\n", err)
		os.Exit(1)
	}
	if len(before) < 2 {
		fmt.Fprintln(os.Stderr, "the user needs at least two cards to transfer between")
		os.Exit(1)
	}

	scenarios := []TransferScenario{
		{"Small", "0.01"},
		{"Medium", "1.50"},
		{"Large", "25.00"},
	}

	fmt.Printf("Load testing transfers across %d cards of %s\n", len(before), *username)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.worker(*delayMs, *replayPct, before, scenarios, jobs, results, stats)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	var collected sync.WaitGroup
	collected.Add(1)
	go func() {
		defer collected.Done()
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	collected.Wait()
	ticker.Stop()
	stats.TotalTime = time.Since(startTime)

	after, err := c.cards()
	if err != nil {
		fmt.Fprintf(os.Stderr, "listing cards after the run failed: %v\n", err)
		os.Exit(1)
	}

	printResults(stats)
	if !printConservation(before, after) {
		os.Exit(2)
	}
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	if result.Success {
		s.SuccessfulRequests++
		if result.Replayed {
			s.ReplayedRequests++
		}
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	if result.ResponseTime < s.MinResponseTime {
		s.MinResponseTime = result.ResponseTime
	}
	if result.ResponseTime > s.MaxResponseTime {
		s.MaxResponseTime = result.ResponseTime
	}
}

func (c *client) worker(delayMs, replayPct int, cards []dto.CardResponse, scenarios []TransferScenario,
	jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	var sent []dto.TransferRequest

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		var req dto.TransferRequest
		scenarioName := "Replay"
		if len(sent) > 0 && rand.Intn(100) < replayPct {
			req = sent[rand.Intn(len(sent))]
		} else {
			// Random ordered pair, so both lock orders are exercised
			perm := rand.Perm(len(cards))
			scenario := scenarios[rand.Intn(len(scenarios))]
			scenarioName = scenario.Name
			req = dto.TransferRequest{
				SourceCardID:      cards[perm[0]].ID,
				DestinationCardID: cards[perm[1]].ID,
				Amount:            scenario.Amount,
				RequestID:         uuid.NewString(),
			}
			sent = append(sent, req)
		}

		stats.Lock.Lock()
		stats.ScenarioStats[scenarioName]++
		stats.Lock.Unlock()

		results <- c.transfer(req)
	}
}

func (c *client) transfer(req dto.TransferRequest) TestResult {
	var resp dto.TransferResponse
	startTime := time.Now()
	status, apiErr, err := c.do(http.MethodPost, "/api/cards/transfer", req, &resp)
	result := TestResult{ResponseTime: time.Since(startTime), StatusCode: status}

	switch {
	case err != nil:
		result.Error = err
	case apiErr != nil:
		result.ErrorCode = apiErr.Code
		result.Error = fmt.Errorf("HTTP %d code %d", status, apiErr.Code)
	default:
		result.Success = true
		result.Replayed = resp.Replayed
	}
	return result
}

func (c *client) login(username, password string) error {
	var resp dto.LoginResponse
	_, apiErr, err := c.do(http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return err
	}
	if apiErr != nil {
		return fmt.Errorf("%d: %s", apiErr.Code, apiErr.Message)
	}
	c.token = resp.Token
	return nil
}

func (c *client) cards() ([]dto.CardResponse, error) {
	var all []dto.CardResponse
	for page := 0; ; page++ {
		var resp dto.PageResponse[dto.CardResponse]
		_, apiErr, err := c.do(http.MethodGet, fmt.Sprintf("/api/cards?page=%d&size=100", page), nil, &resp)
		if err != nil {
			return nil, err
		}
		if apiErr != nil {
			return nil, fmt.Errorf("%d: %s", apiErr.Code, apiErr.Message)
		}
		all = append(all, resp.Items...)
		if page+1 >= resp.TotalPages {
			return all, nil
		}
	}
}

// do sends a JSON request. A non-2xx response is decoded into the returned ErrorResponse.
func (c *client) do(method, path string, body, out any) (int, *dto.ErrorResponse, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr dto.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
			return resp.StatusCode, nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
		}
		return resp.StatusCode, &apiErr, nil
	}
	return resp.StatusCode, nil, json.NewDecoder(resp.Body).Decode(out)
}

func totalCents(cards []dto.CardResponse) (int64, error) {
	var total int64
	for _, card := range cards {
		cents, err := entity.ValidateAndConvertAmount(card.Balance)
		if err != nil {
			return 0, fmt.Errorf("card %d balance %q: %w", card.ID, card.Balance, err)
		}
		if total, err = entity.AddAmounts(total, cents); err != nil {
			return 0, err
		}
	}
	return total, nil
}

func printConservation(before, after []dto.CardResponse) bool {
	fmt.Println("\n----------------- CONSERVATION -----------------")
	totalBefore, err := totalCents(before)
	if err != nil {
		fmt.Printf("cannot sum balances before the run: %v\n", err)
		return false
	}
	totalAfter, err := totalCents(after)
	if err != nil {
		fmt.Printf("cannot sum balances after the run: %v\n", err)
		return false
	}

	fmt.Printf("Total before: %s\n", entity.AmountInCentsToString(totalBefore))
	fmt.Printf("Total after:  %s\n", entity.AmountInCentsToString(totalAfter))
	if totalBefore != totalAfter {
		fmt.Println("❌ BALANCES NOT CONSERVED")
		return false
	}
	fmt.Println("✅ Balances conserved")
	return true
}

func printResults(stats *TestStats) {
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)
		sort.Slice(sortedTimes, func(i, j int) bool { return sortedTimes[i] < sortedTimes[j] })

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Replayed Requests:   %d\n", stats.ReplayedRequests)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (successful requests / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (if all requests were successful)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	// Insufficient funds and the like are expected under load; only the totals must match
	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
