package testing

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/testcontainers/testcontainers-go"
	tces "github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/wait"
)

const esImage = "docker.elastic.co/elasticsearch/elasticsearch:8.15.3"

// ESContainer represents a running single-node Elasticsearch without security.
type ESContainer struct {
	Container testcontainers.Container
	Address   string
	Client    *elasticsearch.TypedClient
}

func NewESContainer(ctx context.Context, tb testing.TB) *ESContainer {
	tb.Helper()

	esContainer, err := tces.Run(ctx,
		esImage,
		testcontainers.WithEnv(map[string]string{
			"xpack.security.enabled": "false",
			"discovery.type":         "single-node",
			"ES_JAVA_OPTS":           "-Xms512m -Xmx512m",
		}),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/").
				WithPort("9200").
				WithStartupTimeout(90*time.Second),
		),
	)
	if err != nil {
		tb.Fatalf("failed to start elasticsearch container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(esContainer); err != nil {
			tb.Logf("failed to terminate elasticsearch container: %v", err)
		}
	})

	host, err := esContainer.Host(ctx)
	if err != nil {
		tb.Fatalf("failed to get elasticsearch host: %v", err)
	}

	port, err := esContainer.MappedPort(ctx, "9200")
	if err != nil {
		tb.Fatalf("failed to get elasticsearch port: %v", err)
	}

	address := fmt.Sprintf("http://%s:%s", host, port.Port())

	client, err := elasticsearch.NewTypedClient(elasticsearch.Config{Addresses: []string{address}})
	if err != nil {
		tb.Fatalf("failed to create elasticsearch client: %v", err)
	}

	return &ESContainer{
		Container: esContainer,
		Address:   address,
		Client:    client,
	}
}

// SeedIndex creates index with mapping and indexes docs (id -> JSON source), refreshing after each write.
func (c *ESContainer) SeedIndex(ctx context.Context, tb testing.TB, index, mapping string, docs map[string]string) {
	tb.Helper()

	if _, err := c.Client.Indices.Create(index).Raw(strings.NewReader(mapping)).Do(ctx); err != nil {
		tb.Fatalf("failed to create index %s: %v", index, err)
	}

	for id, doc := range docs {
		_, err := c.Client.Index(index).
			Id(id).
			Raw(strings.NewReader(doc)).
			Refresh(refresh.True).
			Do(ctx)
		if err != nil {
			tb.Fatalf("failed to index document %s: %v", id, err)
		}
	}
}
