package irc

import (
	"bufio"
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"irchumanizer/internal/config"
)

// Event is one inbound PRIVMSG, already parsed.
type Event struct {
	Sender string
	Target string
	Text   string
}

// Client is a thin line-oriented IRC adapter. All sends funnel through one
// writer goroutine so outbound ordering is preserved and PONG never waits on
// a sleeping responder.
type Client struct {
	cfg    config.IRCConfig
	conn   net.Conn
	reader *bufio.Reader
	sendCh chan string
	done   chan struct{}
}

// NewClient creates an unconnected client.
func NewClient(cfg config.IRCConfig) *Client {
	return &Client{cfg: cfg}
}

// Connect dials the server, starts the writer goroutine and registers the
// nick.
func (c *Client) Connect(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", c.cfg.Server, c.cfg.Port)
	log.Printf("[INFO] Connecting to %s (ssl=%v)", addr, c.cfg.SSL)

	dialer := &net.Dialer{Timeout: 15 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("irc: dial %s: %w", addr, err)
	}
	if c.cfg.SSL {
		tlsConn := tls.Client(conn, &tls.Config{ServerName: c.cfg.Server})
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			conn.Close()
			return fmt.Errorf("irc: tls handshake: %w", err)
		}
		conn = tlsConn
	}

	c.conn = conn
	c.reader = bufio.NewReader(conn)
	c.sendCh = make(chan string, 64)
	c.done = make(chan struct{})
	go c.writeLoop()

	if c.cfg.Password != "" {
		c.SendRaw("PASS " + c.cfg.Password)
	}
	c.SendRaw("NICK " + c.cfg.Nickname)
	c.SendRaw(fmt.Sprintf("USER %s 0 * :%s", c.cfg.Username, c.cfg.Realname))
	return nil
}

func (c *Client) writeLoop() {
	for {
		select {
		case <-c.done:
			return
		case line := <-c.sendCh:
			if _, err := c.conn.Write([]byte(line + "\r\n")); err != nil {
				log.Printf("[ERR] irc write: %v", err)
				return
			}
		}
	}
}

// ReadLine blocks until the next raw server line.
func (c *Client) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// SendRaw queues a raw line; drops it if the writer is backed up rather than
// blocking the caller.
func (c *Client) SendRaw(line string) {
	select {
	case c.sendCh <- line:
	default:
		log.Printf("[WARN] irc send queue full, dropping: %s", line)
	}
}

// SendMessage sends a PRIVMSG to a channel or nick.
func (c *Client) SendMessage(target, text string) {
	c.SendRaw(fmt.Sprintf("PRIVMSG %s :%s", target, text))
}

// SendAction sends a CTCP ACTION ("/me ...") line.
func (c *Client) SendAction(target, text string) {
	c.SendRaw(fmt.Sprintf("PRIVMSG %s :\x01ACTION %s\x01", target, text))
}

// Join joins a channel.
func (c *Client) Join(channel string) {
	c.SendRaw("JOIN " + channel)
	log.Printf("[INFO] Joined %s", channel)
}

// Close tears down the connection and writer.
func (c *Client) Close() {
	if c.done != nil {
		select {
		case <-c.done:
		default:
			close(c.done)
		}
	}
	if c.conn != nil {
		c.conn.Close()
	}
}

// ParsePrivmsg extracts (sender, target, text) from a raw PRIVMSG line of the
// form ":nick!user@host PRIVMSG #chan :text". Malformed lines are dropped.
func ParsePrivmsg(raw string) (Event, bool) {
	parts := strings.SplitN(raw, " ", 4)
	if len(parts) < 4 || parts[1] != "PRIVMSG" {
		return Event{}, false
	}

	senderInfo := strings.TrimPrefix(parts[0], ":")
	sender := senderInfo
	if i := strings.Index(senderInfo, "!"); i >= 0 {
		sender = senderInfo[:i]
	}

	text := strings.TrimPrefix(parts[3], ":")
	if sender == "" || parts[2] == "" {
		return Event{}, false
	}
	return Event{Sender: sender, Target: parts[2], Text: text}, true
}
