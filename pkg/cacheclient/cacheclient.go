package cacheclient

import (
	"context"
	"time"

	"github.com/QuangTung97/go-memcache/memcache"
)

// Client is a string cache backed by memcached
type Client struct {
	client *memcache.Client
}

// New ...
func New(addr string, numConns int) *Client {
	client, err := memcache.New(addr, numConns, memcache.WithRetryDuration(10*time.Second))
	if err != nil {
		panic(err)
	}
	return &Client{
		client: client,
	}
}

// UnsafeFlushAll ...
func (c *Client) UnsafeFlushAll() error {
	p := c.client.Pipeline()
	defer p.Finish()
	return p.FlushAll()()
}

// Close ...
func (c *Client) Close() error {
	return c.client.Close()
}

// Get ...
func (c *Client) Get(_ context.Context, key string) (string, bool, error) {
	p := c.client.Pipeline()
	defer p.Finish()

	resp, err := p.MGet(key, memcache.MGetOptions{})()
	if err != nil {
		return "", false, err
	}
	if resp.Type != memcache.MGetResponseTypeVA {
		return "", false, nil
	}
	return string(resp.Data), true, nil
}

// Set stores the value, ttl = 0 means no expiration
func (c *Client) Set(_ context.Context, key string, value string, ttl uint32) error {
	p := c.client.Pipeline()
	defer p.Finish()

	_, err := p.MSet(key, []byte(value), memcache.MSetOptions{
		TTL: ttl,
	})()
	return err
}

// Delete ...
func (c *Client) Delete(_ context.Context, key string) error {
	p := c.client.Pipeline()
	defer p.Finish()

	_, err := p.MDel(key, memcache.MDelOptions{})()
	return err
}
