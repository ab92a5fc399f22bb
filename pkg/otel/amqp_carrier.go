package otel

// AMQPHeadersCarrier adapts AMQP message headers to the OpenTelemetry
// TextMapCarrier so trace context survives the broker hop.
type AMQPHeadersCarrier map[string]interface{}

func (c AMQPHeadersCarrier) Get(key string) string {
	if v, ok := c[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (c AMQPHeadersCarrier) Set(key, value string) {
	c[key] = value
}

func (c AMQPHeadersCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
