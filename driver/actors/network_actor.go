package actors

import (
	"log"

	"backprop/messages"
	"backprop/training"

	"github.com/asynkron/protoactor-go/actor"
)

// NetworkActor owns a network. Its mailbox runs one request at a time, so training and
// inference never overlap on the shared weights.
type NetworkActor struct {
	network *training.Network
}

func NewNetworkActor(network *training.Network) func() actor.Actor {
	return func() actor.Actor {
		return &NetworkActor{network: network}
	}
}

func (state *NetworkActor) Receive(context actor.Context) {
	switch msg := context.Message().(type) {
	case *actor.Started:
		log.Println("Network Actor started:", context.Self().String())

	case *messages.StartTraining:
		if err := state.network.Train(); err != nil {
			context.Respond(&messages.Failed{Err: err})
			return
		}
		hidden, output := state.network.Weights()
		context.Respond(&messages.TrainingFinished{Hidden: hidden, Output: output})

	case *messages.Evaluate:
		ev, err := state.network.Evaluate(msg.Instances)
		if err != nil {
			context.Respond(&messages.Failed{Err: err})
			return
		}
		context.Respond(&messages.EvaluationFinished{Evaluation: ev})

	case *messages.Predict:
		class, err := state.network.Predict(msg.Instance)
		if err != nil {
			context.Respond(&messages.Failed{Err: err})
			return
		}
		context.Respond(&messages.Prediction{Class: class})

	case *messages.GetWeights:
		hidden, output := state.network.Weights()
		context.Respond(&messages.Weights{Hidden: hidden, Output: output})

	case *actor.Stopped:
		log.Println("Network Actor stopped:", context.Self().String())
	}
}
