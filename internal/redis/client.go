package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"tailor_shop/internal/models"
)

// Client caches JSON snapshots of the customer and order lists. The
// database stays the source of truth; every write path invalidates the
// matching key. Duplicate checks never read from here.
type Client struct {
	rdb *redis.Client
}

const (
	customerListKey = "list:customers"
	orderListKey    = "list:orders"
)

var ErrCacheMiss = fmt.Errorf("cache miss")

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) SetCustomerList(customers []models.Customer, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(customers)
	if err != nil {
		return fmt.Errorf("failed to marshal customer list: %w", err)
	}
	return c.rdb.Set(ctx, customerListKey, jsonData, ttl).Err()
}

func (c *Client) GetCustomerList() ([]models.Customer, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, customerListKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get customer list: %w", err)
	}

	var customers []models.Customer
	if err := json.Unmarshal([]byte(val), &customers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customer list: %w", err)
	}
	return customers, nil
}

func (c *Client) InvalidateCustomerList() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, customerListKey).Err()
}

func (c *Client) SetOrderList(orders []models.Order, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to marshal order list: %w", err)
	}
	return c.rdb.Set(ctx, orderListKey, jsonData, ttl).Err()
}

func (c *Client) GetOrderList() ([]models.Order, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, orderListKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get order list: %w", err)
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(val), &orders); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order list: %w", err)
	}
	return orders, nil
}

func (c *Client) InvalidateOrderList() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, orderListKey).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
