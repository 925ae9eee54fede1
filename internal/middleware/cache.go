package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "encoding/binary"
    "encoding/json"
    "fmt"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/gig-booking-dashboard/internal/config"
)

// captureWriter captures response body/status while forwarding to the client.
type captureWriter struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    size   int64
    limit  int64
}
func (cw *captureWriter) WriteHeader(code int) { cw.status = code; cw.ResponseWriter.WriteHeader(code) }
func (cw *captureWriter) Write(b []byte) (int, error) {
    if cw.limit <= 0 || cw.size < cw.limit {
        remain := cw.limit - cw.size
        if cw.limit <= 0 {
            cw.buf.Write(b)
        } else if remain > 0 {
            if int64(len(b)) <= remain {
                cw.buf.Write(b)
            } else {
                cw.buf.Write(b[:remain])
            }
        }
        cw.size += int64(len(b))
    }
    return cw.ResponseWriter.Write(b)
}

// cacheKeyFrom builds prefix:resource:<sha1> honoring the key strategy.
// The resource segment stays readable so Invalidate can match on it.
func cacheKeyFrom(cfg config.CacheConfig, resource string, c echo.Context) string {
    r := c.Request()
    method := r.Method
    route := c.Path()
    query := r.URL.RawQuery

    var parts []string
    switch strings.ToLower(cfg.KeyStrategy) {
    case "route":
        parts = []string{"route", route}
    case "method_route":
        parts = []string{"method", method, "route", route}
    case "method_route_query":
        parts = []string{"method", method, "route", route, "q", query}
    default: // "route_query"
        parts = []string{"route", route, "q", query}
    }
    // c.Path() holds the pattern, so /gigs/:id needs the concrete values.
    for _, name := range c.ParamNames() {
        parts = append(parts, name, c.Param(name))
    }

    sum := sha1.Sum([]byte(strings.Join(parts, ":")))
    return fmt.Sprintf("%s:%s:%x", cfg.Prefix, resource, sum[:])
}

// encodePayload packs: [4 bytes status][4 bytes headerLen][headerJSON][body]
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
    hdrJSON, err := json.Marshal(header)
    if err != nil {
        return nil, err
    }
    total := 4 + 4 + len(hdrJSON) + len(body)
    out := make([]byte, total)
    binary.BigEndian.PutUint32(out[0:4], uint32(status))
    binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
    copy(out[8:8+len(hdrJSON)], hdrJSON)
    copy(out[8+len(hdrJSON):], body)
    return out, nil
}

func decodePayload(bs []byte) (status int, header http.Header, body []byte, ok bool) {
    if len(bs) < 8 {
        return 0, nil, nil, false
    }
    status = int(binary.BigEndian.Uint32(bs[0:4]))
    hlen := int(binary.BigEndian.Uint32(bs[4:8]))
    if 8+hlen > len(bs) || hlen < 0 {
        return 0, nil, nil, false
    }
    var hdr http.Header
    if hlen > 0 {
        if err := json.Unmarshal(bs[8:8+hlen], &hdr); err != nil {
            return 0, nil, nil, false
        }
    } else {
        hdr = make(http.Header)
    }
    body = bs[8+hlen:]
    return status, hdr, body, true
}

// ResponseCache stores successful GET responses in Redis, grouped by
// resource so that a data-changed event drops every cached page of that
// resource.  A nil *ResponseCache, a disabled config or a nil client all
// turn caching off.
type ResponseCache struct {
    cfg config.CacheConfig
    rdb *redis.Client
}

func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) *ResponseCache {
    if cfg.TTL <= 0 {
        cfg.TTL = 5 * time.Minute
    }
    return &ResponseCache{cfg: cfg, rdb: rdb}
}

// storeScript writes the response only while the resource version is
// still the one read before the handler ran.
var storeScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1]) or ''
if current ~= ARGV[1] then
  return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// versionKey lives outside the prefix:resource:* namespace so Invalidate
// never scans it.
func (rc *ResponseCache) versionKey(resource string) string {
    return rc.cfg.Prefix + ":_version:" + resource
}

func (rc *ResponseCache) enabled() bool {
    return rc != nil && rc.cfg.Enabled && rc.rdb != nil
}

// For returns the caching middleware for routes that read resource.
// Headers and body are stored together so clients see identical output.
func (rc *ResponseCache) For(resource string) echo.MiddlewareFunc {
    if !rc.enabled() {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    cfg, rdb := rc.cfg, rc.rdb
    maxBody := int64(cfg.MaxBodyBytes)

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
                return next(c)
            }

            ctx := c.Request().Context()
            key := cacheKeyFrom(cfg, resource, c)

            if bs, err := rdb.Get(ctx, key).Bytes(); err == nil && len(bs) >= 8 {
                if status, hdr, body, ok := decodePayload(bs); ok {
                    for k, vals := range hdr {
                        // X-Cache is set below; Content-Length is Echo's job.
                        if strings.EqualFold(k, "Content-Length") || strings.EqualFold(k, "X-Cache") {
                            continue
                        }
                        for _, v := range vals {
                            c.Response().Header().Add(k, v)
                        }
                    }
                    c.Response().Header().Set("X-Cache", "HIT")
                    c.Response().WriteHeader(status)
                    if len(body) > 0 {
                        _, _ = c.Response().Write(body)
                    }
                    return nil
                }
            }

            // Read before the handler runs; a store is dropped if an
            // invalidation bumped the version meanwhile.
            version, _ := rdb.Get(ctx, rc.versionKey(resource)).Result()

            cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: maxBody}
            c.Response().Writer = cw
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }

            // Truncated bodies are not stored.
            if cw.status == http.StatusOK && (maxBody <= 0 || cw.size <= maxBody) {
                hdr := c.Response().Header().Clone()
                if payload, err := encodePayload(cw.status, hdr, cw.buf.Bytes()); err == nil {
                    _ = storeScript.Run(context.Background(), rdb,
                        []string{rc.versionKey(resource), key},
                        version, payload, cfg.TTL.Milliseconds()).Err()
                }
            }
            return nil
        }
    }
}

// Invalidate bumps the resource version, then deletes every cached
// response of resource and returns how many keys were removed.
func (rc *ResponseCache) Invalidate(ctx context.Context, resource string) (int64, error) {
    if !rc.enabled() {
        return 0, nil
    }
    if err := rc.rdb.Incr(ctx, rc.versionKey(resource)).Err(); err != nil {
        return 0, err
    }
    var removed int64
    iter := rc.rdb.Scan(ctx, 0, rc.cfg.Prefix+":"+resource+":*", 100).Iterator()
    batch := make([]string, 0, 100)
    flush := func() error {
        if len(batch) == 0 {
            return nil
        }
        n, err := rc.rdb.Del(ctx, batch...).Result()
        removed += n
        batch = batch[:0]
        return err
    }
    for iter.Next(ctx) {
        batch = append(batch, iter.Val())
        if len(batch) == cap(batch) {
            if err := flush(); err != nil {
                return removed, err
            }
        }
    }
    if err := iter.Err(); err != nil {
        return removed, err
    }
    return removed, flush()
}
