package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// claimError is the error body returned by a failed claim
type claimError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason"`
}

// productBody holds the product fields the test checks
type productBody struct {
	ID                uint64 `json:"id"`
	VoucherEnabled    bool   `json:"voucher_enabled"`
	VoucherQuantity   int64  `json:"voucher_quantity"`
	AvailableVouchers int64  `json:"available_vouchers"`
}

// claimResult contains the outcome of a single claim
type claimResult struct {
	UserID       uint64
	StatusCode   int
	Reason       string
	ResponseTime time.Duration
	Err          error
}

// testStats contains aggregated test statistics
type testStats struct {
	sync.Mutex
	ResponseTimes []time.Duration
	Outcomes      map[string]int
	Claimed       map[uint64]int
}

// Every user claims the same product at once, some of them twice.
// The run fails when more vouchers are issued than the pool held or a user
// receives two vouchers.
func main() {
	concurrency := flag.Int("c", 20, "Number of concurrent goroutines")
	users := flag.Int("users", 50, "Number of distinct users claiming")
	repeat := flag.Int("repeat", 2, "Claims sent per user")
	firstUser := flag.Uint64("first-user", 1000, "First user ID; users get consecutive IDs")
	productID := flag.Uint64("product", 1, "Product to claim vouchers from")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	before, err := fetchProduct(client, *baseURL, *productID, *firstUser)
	if err != nil {
		fmt.Printf("Failed to read product %d: %v\n", *productID, err)
		os.Exit(1)
	}

	fmt.Printf("Claiming vouchers of product %d (enabled=%v, remaining=%d)\n",
		before.ID, before.VoucherEnabled, before.VoucherQuantity)
	fmt.Printf("Users: %d, claims per user: %d, concurrency: %d\n", *users, *repeat, *concurrency)

	jobs := make(chan uint64, *users**repeat)
	for r := 0; r < *repeat; r++ {
		for u := 0; u < *users; u++ {
			jobs <- *firstUser + uint64(u)
		}
	}
	close(jobs)

	stats := &testStats{
		Outcomes: make(map[string]int),
		Claimed:  make(map[uint64]int),
	}

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for userID := range jobs {
				stats.record(claim(client, *baseURL, *productID, userID))
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	after, err := fetchProduct(client, *baseURL, *productID, *firstUser)
	if err != nil {
		fmt.Printf("Failed to re-read product %d: %v\n", *productID, err)
		os.Exit(1)
	}

	if !printResults(stats, before, after, elapsed) {
		os.Exit(1)
	}
}

func fetchProduct(client *http.Client, baseURL string, productID, userID uint64) (*productBody, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/products/%d", baseURL, productID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-User-ID", fmt.Sprint(userID))

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var body productBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &body, nil
}

func claim(client *http.Client, baseURL string, productID, userID uint64) claimResult {
	result := claimResult{UserID: userID}

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/products/%d/claim_voucher", baseURL, productID), nil)
	if err != nil {
		result.Err = err
		return result
	}
	req.Header.Set("X-User-ID", fmt.Sprint(userID))
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := client.Do(req)
	result.ResponseTime = time.Since(start)
	if err != nil {
		result.Err = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		var body claimError
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			result.Reason = body.Reason
		}
	}
	return result
}

func (s *testStats) record(r claimResult) {
	s.Lock()
	defer s.Unlock()

	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
	switch {
	case r.Err != nil:
		s.Outcomes["transport: "+r.Err.Error()]++
	case r.StatusCode == http.StatusOK:
		s.Outcomes["claimed"]++
		s.Claimed[r.UserID]++
	case r.Reason != "":
		s.Outcomes[r.Reason]++
	default:
		s.Outcomes[fmt.Sprintf("HTTP %d", r.StatusCode)]++
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *testStats, before, after *productBody, elapsed time.Duration) bool {
	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Claims:        %d\n", len(sorted))
	fmt.Printf("Total Test Time:     %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("Throughput:          %.2f claims/s\n", float64(len(sorted))/elapsed.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- OUTCOMES -----------------")
	for outcome, count := range stats.Outcomes {
		fmt.Printf("%-30s: %d\n", outcome, count)
	}

	issued := int64(stats.Outcomes["claimed"])
	ok := true

	fmt.Println("\n================= CHECKS =================")
	if issued > before.VoucherQuantity {
		fmt.Printf("FAIL: issued %d vouchers from a pool of %d\n", issued, before.VoucherQuantity)
		ok = false
	}
	if after.VoucherQuantity != before.VoucherQuantity-issued {
		fmt.Printf("FAIL: remaining %d, expected %d\n", after.VoucherQuantity, before.VoucherQuantity-issued)
		ok = false
	}
	for userID, n := range stats.Claimed {
		if n > 1 {
			fmt.Printf("FAIL: user %d received %d vouchers\n", userID, n)
			ok = false
		}
	}
	if ok {
		fmt.Printf("OK: %d issued, %d remaining\n", issued, after.VoucherQuantity)
	}
	return ok
}
