package lang

// classDocs maps class names to their markdown help, shown on hover and
// attached to completion items.
var classDocs = map[string]string{
	"SinOsc": "**SinOsc** — interpolating sine wavetable oscillator.\n\n" +
		"```supercollider\nSinOsc.ar(freq: 440, phase: 0, mul: 1, add: 0)\n```\n\n" +
		"`freq` in Hz, `phase` in radians.",
	"Saw": "**Saw** — band-limited sawtooth oscillator.\n\n" +
		"```supercollider\nSaw.ar(freq: 440, mul: 1, add: 0)\n```",
	"Pulse": "**Pulse** — band-limited pulse wave with variable duty cycle.\n\n" +
		"```supercollider\nPulse.ar(freq: 440, width: 0.5, mul: 1, add: 0)\n```",
	"LFSaw": "**LFSaw** — non-band-limited sawtooth, useful as a control or modulator.\n\n" +
		"```supercollider\nLFSaw.ar(freq: 440, iphase: 0, mul: 1, add: 0)\n```",
	"LFNoise0": "**LFNoise0** — step noise: random values at a rate of `freq` per second.\n\n" +
		"```supercollider\nLFNoise0.kr(freq: 500, mul: 1, add: 0)\n```",
	"WhiteNoise": "**WhiteNoise** — noise with equal energy at all frequencies.\n\n" +
		"```supercollider\nWhiteNoise.ar(mul: 1, add: 0)\n```",
	"PinkNoise": "**PinkNoise** — noise with equal energy per octave (-3 dB/octave).\n\n" +
		"```supercollider\nPinkNoise.ar(mul: 1, add: 0)\n```",
	"Dust": "**Dust** — random positive impulses at an average `density` per second.\n\n" +
		"```supercollider\nDust.ar(density: 0, mul: 1, add: 0)\n```",
	"Impulse": "**Impulse** — non-band-limited impulse oscillator.\n\n" +
		"```supercollider\nImpulse.ar(freq: 440, phase: 0, mul: 1, add: 0)\n```",
	"Out": "**Out** — writes a signal to an audio or control bus.\n\n" +
		"```supercollider\nOut.ar(bus, channelsArray)\n```",
	"Pan2": "**Pan2** — two-channel equal-power panner.\n\n" +
		"```supercollider\nPan2.ar(in, pos: 0, level: 1)\n```",
	"Mix": "**Mix** — sums an array of channels down to a single channel.\n\n" +
		"```supercollider\nMix.new(array)\nMix.fill(n, function)\n```",
	"EnvGen": "**EnvGen** — plays back an `Env` envelope, optionally freeing its synth.\n\n" +
		"```supercollider\nEnvGen.kr(envelope, gate: 1, levelScale: 1, levelBias: 0, timeScale: 1, doneAction: 0)\n```",
	"Env": "**Env** — specification of a segmented envelope.\n\n" +
		"```supercollider\nEnv.perc(attackTime: 0.01, releaseTime: 1, level: 1, curve: -4)\nEnv.adsr(0.01, 0.3, 0.5, 1)\n```",
	"Line": "**Line** — generates a line from `start` to `end` over `dur` seconds.\n\n" +
		"```supercollider\nLine.kr(start: 0, end: 1, dur: 1, mul: 1, add: 0, doneAction: 0)\n```",
	"XLine": "**XLine** — exponential line generator; `start` and `end` must share sign and be non-zero.\n\n" +
		"```supercollider\nXLine.kr(start: 1, end: 2, dur: 1, mul: 1, add: 0, doneAction: 0)\n```",
	"LPF": "**LPF** — 12 dB/octave second-order low-pass filter.\n\n" +
		"```supercollider\nLPF.ar(in, freq: 440, mul: 1, add: 0)\n```",
	"HPF": "**HPF** — 12 dB/octave second-order high-pass filter.\n\n" +
		"```supercollider\nHPF.ar(in, freq: 440, mul: 1, add: 0)\n```",
	"RLPF": "**RLPF** — resonant low-pass filter.\n\n" +
		"```supercollider\nRLPF.ar(in, freq: 440, rq: 1, mul: 1, add: 0)\n```\n\n" +
		"`rq` is the reciprocal of Q: bandwidth / cutoff.",
	"Resonz": "**Resonz** — two-pole resonant band-pass filter with constant gain at the center frequency.\n\n" +
		"```supercollider\nResonz.ar(in, freq: 440, bwr: 1, mul: 1, add: 0)\n```",
	"CombN": "**CombN** — comb delay line without interpolation.\n\n" +
		"```supercollider\nCombN.ar(in, maxdelaytime: 0.2, delaytime: 0.2, decaytime: 1, mul: 1, add: 0)\n```",
	"AllpassN": "**AllpassN** — all-pass delay line without interpolation.\n\n" +
		"```supercollider\nAllpassN.ar(in, maxdelaytime: 0.2, delaytime: 0.2, decaytime: 1, mul: 1, add: 0)\n```",
	"FreeVerb": "**FreeVerb** — single-channel Schroeder reverb.\n\n" +
		"```supercollider\nFreeVerb.ar(in, mix: 0.33, room: 0.5, damp: 0.5, mul: 1, add: 0)\n```",
	"PlayBuf": "**PlayBuf** — plays back a buffer held in memory.\n\n" +
		"```supercollider\nPlayBuf.ar(numChannels, bufnum: 0, rate: 1, trigger: 1, startPos: 0, loop: 0, doneAction: 0)\n```",
	"Buffer": "**Buffer** — client-side representation of a server buffer.\n\n" +
		"```supercollider\nBuffer.read(server, path)\nBuffer.alloc(server, numFrames, numChannels: 1)\n```",
	"Bus": "**Bus** — client-side representation of an audio or control bus.\n\n" +
		"```supercollider\nBus.audio(server, numChannels: 1)\nBus.control(server, numChannels: 1)\n```",
	"Server": "**Server** — client-side representation of an scsynth process.\n\n" +
		"The default server is bound to the interpreter variable `s`.\n\n" +
		"```supercollider\ns.boot;\ns.reboot;\ns.quit;\n```",
	"Synth": "**Synth** — client-side representation of a synth node on the server.\n\n" +
		"```supercollider\nSynth.new(defName, args, target, addAction: \\addToHead)\n```",
	"SynthDef": "**SynthDef** — a named unit generator graph definition.\n\n" +
		"```supercollider\nSynthDef(\\name, { |out = 0| Out.ar(out, SinOsc.ar(440)) }).add;\n```",
	"Group": "**Group** — a node order grouping of synths on the server.\n\n" +
		"```supercollider\nGroup.new(target, addAction: \\addToHead)\n```",
	"Pbind": "**Pbind** — combines value patterns into a stream of events.\n\n" +
		"```supercollider\nPbind(\\degree, Pseq([0, 2, 4], inf), \\dur, 0.25).play;\n```",
	"Pseq": "**Pseq** — cycles over a list of values `repeats` times.\n\n" +
		"```supercollider\nPseq(list, repeats: 1, offset: 0)\n```",
	"Pwhite": "**Pwhite** — stream of uniformly distributed random values between `lo` and `hi`.\n\n" +
		"```supercollider\nPwhite(lo: 0, hi: 1, length: inf)\n```",
	"Prand": "**Prand** — picks items from the list at random.\n\n" +
		"```supercollider\nPrand(list, repeats: 1)\n```",
	"Routine": "**Routine** — a function that can be suspended with `yield` and resumed.\n\n" +
		"```supercollider\nRoutine { 1.yield; 2.yield }.play;\n```",
	"Task": "**Task** — a pauseable process, like a Routine that can be paused and resumed.\n\n" +
		"```supercollider\nTask { loop { 0.5.wait; \"tick\".postln } }.play;\n```",
	"TempoClock": "**TempoClock** — a scheduler with a tempo in beats per second.\n\n" +
		"```supercollider\nTempoClock.default.tempo = 2; // 120 bpm\n```",
	"CmdPeriod": "**CmdPeriod** — registers objects to be cleared when Cmd-. is pressed.\n\n" +
		"```supercollider\nCmdPeriod.run; // stop all sounds\n```",
	"OSCFunc": "**OSCFunc** — responder for incoming OSC messages.\n\n" +
		"```supercollider\nOSCFunc({ |msg| msg.postln }, '/path')\n```",
	"NetAddr": "**NetAddr** — a network address (host and port) for OSC communication.\n\n" +
		"```supercollider\nNetAddr(\"127.0.0.1\", 57120)\n```",
	"Ndef": "**Ndef** — node proxy bound to a name; rebuild signal chains on the fly.\n\n" +
		"```supercollider\nNdef(\\a, { SinOsc.ar(440) * 0.1 }).play;\n```",
}

// methodDocs maps method names to their markdown help.
var methodDocs = map[string]string{
	"play": "**play** — plays the receiver: functions build a synth, patterns and streams schedule events.\n\n" +
		"```supercollider\n{ SinOsc.ar(440) * 0.1 }.play;\n```",
	"stop": "**stop** — stops the receiver (synth, pattern player, clock task).",
	"boot": "**boot** — boots the server process.\n\n```supercollider\ns.boot;\n```",
	"quit": "**quit** — quits the server process.\n\n```supercollider\ns.quit;\n```",
	"reboot": "**reboot** — quits and boots the server again.\n\n```supercollider\ns.reboot;\n```",
	"free": "**free** — frees the node on the server, releasing its resources immediately.",
	"release": "**release** — releases a node with a gated envelope over `releaseTime` seconds.\n\n" +
		"```supercollider\nx.release(2);\n```",
	"set": "**set** — sets named controls of a node.\n\n```supercollider\nx.set(\\freq, 220);\n```",
	"scope": "**scope** — opens an oscilloscope window on the receiver's output.",
	"plot": "**plot** — plots the receiver (signal, envelope, buffer) in a window.",
	"postln": "**postln** — prints the receiver to the post window, followed by a newline.\n\n" +
		"```supercollider\n\"hello\".postln;\n```",
	"ar": "**ar** — constructs the UGen at audio rate.",
	"kr": "**kr** — constructs the UGen at control rate.",
	"ir": "**ir** — constructs the UGen at initialization rate: computed once at synth start.",
	"midicps": "**midicps** — converts a MIDI note number to frequency in Hz.\n\n" +
		"```supercollider\n69.midicps; // 440.0\n```",
	"cpsmidi": "**cpsmidi** — converts a frequency in Hz to a MIDI note number.",
	"rand": "**rand** — a random value from zero up to the receiver.",
	"rrand": "**rrand** — a random value in the range receiver..argument.\n\n" +
		"```supercollider\n1.0.rrand(4.0);\n```",
	"exprand": "**exprand** — a random value from an exponential distribution between the receiver and the argument.",
	"choose": "**choose** — a random element of the collection.",
	"linlin": "**linlin** — maps the receiver linearly from one range to another.\n\n" +
		"```supercollider\nx.linlin(0, 1, 200, 800)\n```",
	"linexp": "**linexp** — maps the receiver linearly onto an exponential range.",
	"range": "**range** — scales the UGen's default output range to lo..hi.\n\n" +
		"```supercollider\nSinOsc.kr(1).range(200, 800)\n```",
	"dup": "**dup** — returns an array of `n` copies of the receiver.\n\n" +
		"```supercollider\n{ PinkNoise.ar }.dup(2)\n```",
	"wait": "**wait** — suspends the current thread for the receiver's duration in beats.",
	"yield": "**yield** — yields the receiver as the next value of the enclosing Routine.",
	"fork": "**fork** — runs the function as a Routine on a clock.\n\n" +
		"```supercollider\n{ 3.do { \"tick\".postln; 1.wait } }.fork;\n```",
	"value": "**value** — evaluates the receiver, passing any arguments.",
	"interpret": "**interpret** — compiles and evaluates the receiver string as sclang code.",
	"record": "**record** — starts recording the server's output to disk.",
	"sendMsg": "**sendMsg** — sends an OSC message to the address.\n\n" +
		"```supercollider\nn.sendMsg(\"/hello\", 1, 2.0);\n```",
	"trace": "**trace** — prints debugging information for the node or stream.",
}
