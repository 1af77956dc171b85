package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
	vegeta "github.com/tsenart/vegeta/v12/lib"

	"hr-dashboard-service/internal/config"
)

const (
	defaultBaseURL     = "http://localhost:8080"
	defaultRate        = 2
	defaultDuration    = 60 * time.Second
	defaultResultsFile = "load/artifacts/results.bin"
)

var resultsFile = defaultResultsFile

func main() {
	// LOAD_TEST_TARGETS задаёт файл целей по умолчанию
	var loadCfg config.LoadTestConfig
	if err := env.Parse(&loadCfg); err != nil {
		log.Fatalf("Некорректные переменные окружения: %v", err)
	}

	var (
		baseURL     = flag.String("url", defaultBaseURL, "Base URL сервиса")
		rate        = flag.Int("rate", defaultRate, "Запросов в секунду")
		duration    = flag.Duration("duration", defaultDuration, "Длительность теста (например, 60s)")
		userID      = flag.String("user", "", "ID сотрудника ClickUp для отчёта об эффективности")
		listID      = flag.String("list", "", "ID списка ClickUp для GET /tasks")
		targetsPath = flag.String("targets", loadCfg.TargetsPath, "Файл целей в формате vegeta (перекрывает встроенный набор)")
		probeOnly   = flag.Bool("probe-only", false, "Только проверка доступности сервиса")
		report      = flag.Bool("report", false, "Показать отчёт из сохранённых результатов")
		plot        = flag.Bool("plot", false, "Показать команду для HTML графика")
	)
	flag.Parse()

	if *report {
		showReport()
		return
	}
	if *plot {
		writePlotInstructions(os.Stdout)
		return
	}

	if err := probe(*baseURL); err != nil {
		log.Fatalf("Сервис недоступен: %v", err)
	}
	if *probeOnly {
		return
	}

	targeter, err := buildTargeter(*baseURL, *userID, *listID, *targetsPath)
	if err != nil {
		log.Fatalf("Не удалось подготовить цели: %v", err)
	}

	fmt.Println("=== Нагрузочное тестирование HR дашборда ===")
	fmt.Printf("URL: %s\n", *baseURL)
	fmt.Printf("Rate: %d req/s\n", *rate)
	fmt.Printf("Duration: %s\n", *duration)
	fmt.Println()

	if err := runLoadTest(targeter, *rate, *duration); err != nil {
		log.Fatalf("Ошибка при нагрузочном тестировании: %v", err)
	}

	fmt.Println()
	fmt.Println("Для детального анализа выполните:")
	fmt.Printf("  go run ./load/cli -report\n")
	fmt.Printf("  go run ./load/cli -plot\n")
}

// probe проверяет /health одним запросом vegeta.
func probe(baseURL string) error {
	targeter := vegeta.NewStaticTargeter(vegeta.Target{
		Method: http.MethodGet,
		URL:    baseURL + "/health",
	})

	attacker := vegeta.NewAttacker()
	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, vegeta.Rate{Freq: 1, Per: time.Second}, time.Second, "probe") {
		metrics.Add(res)
	}
	metrics.Close()

	if metrics.StatusCodes["200"] == 0 {
		return fmt.Errorf("health check failed: статусы %v", metrics.StatusCodes)
	}
	return nil
}

// dashboardTargets встроенный набор запросов: сводка, сотрудники, отчёт, задачи списка.
func dashboardTargets(baseURL, userID, listID string) []vegeta.Target {
	targets := []vegeta.Target{
		{Method: http.MethodGet, URL: baseURL + "/dashboard-summary"},
		{Method: http.MethodGet, URL: baseURL + "/employees"},
	}
	if userID != "" {
		q := url.Values{"userId": {userID}, "performanceReport": {"true"}, "days": {"30"}}
		targets = append(targets,
			vegeta.Target{Method: http.MethodGet, URL: baseURL + "/employees?" + q.Encode()},
			vegeta.Target{Method: http.MethodGet, URL: baseURL + "/employees/history?" + url.Values{"userId": {userID}}.Encode()},
		)
	}
	if listID != "" {
		q := url.Values{"listId": {listID}, "limit": {"50"}}
		targets = append(targets, vegeta.Target{Method: http.MethodGet, URL: baseURL + "/tasks?" + q.Encode()})
	}
	return targets
}

func buildTargeter(baseURL, userID, listID, targetsPath string) (vegeta.Targeter, error) {
	if targetsPath == "" {
		return vegeta.NewStaticTargeter(dashboardTargets(baseURL, userID, listID)...), nil
	}
	data, err := os.ReadFile(targetsPath)
	if err != nil {
		return nil, fmt.Errorf("read targets: %w", err)
	}
	targets, err := vegeta.ReadAllTargets(vegeta.NewHTTPTargeter(bytes.NewReader(data), nil, nil))
	if err != nil {
		return nil, fmt.Errorf("parse targets: %w", err)
	}
	if len(targets) == 0 {
		return nil, vegeta.ErrNoTargets
	}
	return vegeta.NewStaticTargeter(targets...), nil
}

// runLoadTest запускает нагрузочное тестирование
func runLoadTest(targeter vegeta.Targeter, rate int, duration time.Duration) error {
	if rate <= 0 {
		return fmt.Errorf("rate must be positive, got %d", rate)
	}

	attacker := vegeta.NewAttacker(
		vegeta.Timeout(90*time.Second),
		vegeta.Workers(uint64(rate)),
	)

	ctx, cancel := context.WithTimeout(context.Background(), duration+5*time.Second)
	defer cancel()
	go func() {
		<-ctx.Done()
		attacker.Stop()
	}()

	var metrics vegeta.Metrics
	var allResults []vegeta.Result
	for res := range attacker.Attack(targeter, vegeta.Rate{Freq: rate, Per: time.Second}, duration, "hr-dashboard") {
		metrics.Add(res)
		allResults = append(allResults, *res)
	}
	metrics.Close()

	if err := saveResults(allResults); err != nil {
		return fmt.Errorf("сохранить результаты: %w", err)
	}

	reporter := vegeta.NewTextReporter(&metrics)
	if err := reporter(os.Stdout); err != nil {
		return fmt.Errorf("сгенерировать отчёт: %w", err)
	}
	return nil
}

// saveResults сохраняет результаты в бинарный файл
func saveResults(results []vegeta.Result) error {
	if err := os.MkdirAll(filepath.Dir(resultsFile), 0o755); err != nil {
		return fmt.Errorf("создать директорию: %w", err)
	}

	file, err := os.Create(resultsFile)
	if err != nil {
		return fmt.Errorf("создать файл: %w", err)
	}
	defer file.Close()

	encoder := vegeta.NewEncoder(file)
	for i := range results {
		if err := encoder.Encode(&results[i]); err != nil {
			return fmt.Errorf("записать результат: %w", err)
		}
	}

	fmt.Printf("Результаты сохранены в %s\n", resultsFile)
	return nil
}

// showReport показывает отчёт из сохранённых результатов
func showReport() {
	if err := renderReport(os.Stdout, resultsFile); err != nil {
		log.Fatalf("Не удалось построить отчёт: %v", err)
	}
}

func renderReport(out io.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open results: %w", err)
	}
	defer file.Close()

	decoder := vegeta.NewDecoder(file)
	var metrics vegeta.Metrics
	for {
		var res vegeta.Result
		if err := decoder.Decode(&res); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("decode result: %w", err)
		}
		metrics.Add(&res)
	}
	metrics.Close()

	reporter := vegeta.NewTextReporter(&metrics)
	if err := reporter(out); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func writePlotInstructions(out io.Writer) {
	fmt.Fprintln(out, "Для генерации HTML графика используйте CLI утилиту vegeta:")
	fmt.Fprintf(out, "  vegeta plot %s > load/artifacts/plot.html\n", resultsFile)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Установка CLI утилиты:")
	fmt.Fprintln(out, "  go install github.com/tsenart/vegeta/v12@latest")
}
