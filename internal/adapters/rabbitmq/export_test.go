package rabbitmq

// DropChannel closes the publishing channel the way a channel-level broker
// error would.
func (p *Publisher) DropChannel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		_ = p.channel.Close()
	}
}
